package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsmith/internal/modules/flight"
	"tripsmith/internal/modules/itinerary"
	"tripsmith/internal/types"
)

type fakeFlights struct {
	got   flight.FlightSearchRequest
	calls int
}

func (f *fakeFlights) Search(ctx context.Context, req flight.FlightSearchRequest) (*flight.FlightSearchResult, error) {
	f.calls++
	f.got = req
	return &flight.FlightSearchResult{Query: flight.BuildQuery(req), Note: flight.Note}, nil
}

type fakeItinerary struct {
	got itinerary.ItineraryRequest
	err error
}

func (f *fakeItinerary) Generate(ctx context.Context, req itinerary.ItineraryRequest) (*itinerary.ItineraryResult, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &itinerary.ItineraryResult{ItineraryMarkdown: "# " + req.Destination}, nil
}

func newTestRegistry() (*Registry, *fakeFlights, *fakeItinerary) {
	flights := &fakeFlights{}
	itin := &fakeItinerary{}
	return NewRegistry(NewFlightSearchTool(flights), NewTravelItineraryTool(itin)), flights, itin
}

func TestRegistry_List(t *testing.T) {
	reg, _, _ := newTestRegistry()

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, FlightSearchName, list[0].Name)
	assert.Equal(t, TravelItineraryName, list[1].Name)
	assert.Contains(t, list[0].Description, "Tavily web search")
	assert.Contains(t, list[1].Description, "FINAL trip itinerary")
	assert.Equal(t, []string{"origin", "destination", "depart_date"}, list[0].Parameters["required"])
	assert.Equal(t, []string{"destination", "start_date", "end_date"}, list[1].Parameters["required"])

	_, err := json.Marshal(list)
	assert.NoError(t, err)
}

func TestRegistry_CallFlightSearch(t *testing.T) {
	reg, flights, _ := newTestRegistry()

	out, err := reg.Call(context.Background(), FlightSearchName, json.RawMessage(`{
		"origin":"DEL","destination":"SIN","depart_date":"2026-03-10","return_date":"2026-03-14",
		"adults":2,"max_results":2,"unexpected":"ignored"
	}`))
	require.NoError(t, err)

	res, ok := out.(*flight.FlightSearchResult)
	require.True(t, ok)
	assert.Equal(t, "flights DEL to SIN round trip 2026-03-10 to 2026-03-14 2 adults economy prices", res.Query)
	assert.Equal(t, 2, flights.got.MaxResults)
	assert.Equal(t, "moderate", flights.got.Pace)
}

func TestRegistry_CallValidation(t *testing.T) {
	reg, flights, _ := newTestRegistry()

	cases := map[string]string{
		"missing origin": `{"destination":"SIN","depart_date":"2026-03-10"}`,
		"adults range":   `{"origin":"DEL","destination":"SIN","depart_date":"d","adults":12}`,
		"bad json":       `{"origin":`,
		"wrong type":     `{"origin":"DEL","destination":"SIN","depart_date":"d","adults":"two"}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := reg.Call(context.Background(), FlightSearchName, json.RawMessage(input))
			assert.True(t, types.IsValidation(err), "got %v", err)
		})
	}
	assert.Equal(t, 0, flights.calls)
}

func TestRegistry_CallItinerary(t *testing.T) {
	reg, _, itin := newTestRegistry()

	out, err := reg.Call(context.Background(), TravelItineraryName, json.RawMessage(`{"destination":"Kyoto","start_date":"a","end_date":"b","pace":"fast"}`))
	require.NoError(t, err)
	assert.Equal(t, "# Kyoto", out.(*itinerary.ItineraryResult).ItineraryMarkdown)
	assert.Equal(t, "fast", itin.got.Pace)

	itin.err = &types.ConfigurationError{Key: "NVIDIA_API_KEY"}
	_, err = reg.Call(context.Background(), TravelItineraryName, json.RawMessage(`{"destination":"Kyoto","start_date":"a","end_date":"b"}`))
	assert.True(t, types.IsConfiguration(err))
}

func TestRegistry_UnknownTool(t *testing.T) {
	reg, _, _ := newTestRegistry()
	_, err := reg.Call(context.Background(), "hotel_search", nil)
	assert.True(t, errors.Is(err, ErrUnknownTool))
}
