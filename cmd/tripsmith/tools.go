package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tripsmith/internal/types"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List or call the registered tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices()
		if err != nil {
			return err
		}
		list := svc.registry.List()
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), list)
		}
		for _, d := range list {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", d.Name, d.Description)
		}
		return nil
	},
}

var toolsCallCmd = &cobra.Command{
	Use:   "call <name> [json|-]",
	Short: "Call a tool with a JSON input (use - to read stdin)",
	Long: `Call a tool exactly as an agent host would.

Example:
  tripsmith tools call flight_search '{"origin":"DEL","destination":"SIN","depart_date":"2026-03-10"}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := "{}"
		if len(args) == 2 {
			input = args[1]
		}
		if input == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			input = string(data)
		}
		if !json.Valid([]byte(strings.TrimSpace(input))) {
			return &types.ValidationError{Field: "input", Reason: "not valid JSON"}
		}

		svc, err := buildServices()
		if err != nil {
			return err
		}
		out, err := svc.registry.Call(cmd.Context(), args[0], json.RawMessage(input))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	toolsCmd.AddCommand(toolsCallCmd)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func printText(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
