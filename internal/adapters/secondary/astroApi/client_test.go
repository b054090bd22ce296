package astroApi_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/astroApi"
	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

func testUser(place string) *domain.User {
	return &domain.User{
		ID:       "u-1",
		Name:     "Asha",
		Place:    place,
		Time:     "10:30",
		Day:      "01",
		Month:    "02",
		Year:     "1990",
		Timezone: "+05:30",
	}
}

func newClient(t *testing.T, handler http.HandlerFunc) *astroApi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return astroApi.NewClient(&astroApi.Config{BaseURL: srv.URL + "/api/"}, log)
}

func TestFetchChartSVG(t *testing.T) {
	var gotPath string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("<svg/>"))
	})

	svg, err := client.FetchChartSVG(context.Background(), testUser("Delhi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svg != "<svg/>" {
		t.Errorf("expected body verbatim, got %q", svg)
	}

	want := "/api/Calculate/SouthIndianChart/Location/Delhi/Time/10:30/01/02/1990/+05:30/ChartType/BhavaChalit/Ayanamsa/RAMAN"
	if gotPath != want {
		t.Errorf("path mismatch\n got: %s\nwant: %s", gotPath, want)
	}
}

func TestFetchChartSVG_NonOK(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		// any status other than 200 is a failure, including other 2xx
		w.WriteHeader(http.StatusAccepted)
	})

	_, err := client.FetchChartSVG(context.Background(), testUser("Delhi"))

	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.Message != "VedAstro error" || upErr.Status != http.StatusAccepted {
		t.Errorf("unexpected error %+v", upErr)
	}
}

func TestFetchMatchReport(t *testing.T) {
	var gotPath string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("report"))
	})

	u2 := testUser("Mumbai")
	u2.Time, u2.Day, u2.Month, u2.Year, u2.Timezone = "23:05", "15", "08", "1992", "+00:00"

	report, err := client.FetchMatchReport(context.Background(), testUser("Delhi"), u2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != "report" {
		t.Errorf("unexpected report %q", report)
	}

	want := "/api/Calculate/MatchReport" +
		"/Location/Delhi/Time/10:30/01/02/1990/+05:30" +
		"/Location/Mumbai/Time/23:05/15/08/1992/+00:00" +
		"/Ayanamsa/LAHIRI"
	if gotPath != want {
		t.Errorf("path mismatch\n got: %s\nwant: %s", gotPath, want)
	}
}

func TestFetchMatchReport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := astroApi.NewClient(&astroApi.Config{BaseURL: srv.URL}, log)
	srv.Close()

	_, err := client.FetchMatchReport(context.Background(), testUser("Delhi"), testUser("Pune"))

	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.Err == nil {
		t.Error("expected transport cause to be kept")
	}
}

func TestFetchPlanetData(t *testing.T) {
	var gotPath string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{
			"Status": "Pass",
			"Payload": {"AllPlanetData": [
				{"Sun": {"HousePlanetOccupiesBasedOnSign": "House10", "IsPlanetBenefic": false, "PlanetsInConjunction": ["Mercury"], "PlanetLongitude": 301.2}},
				{"Moon": {"HousePlanetOccupiesBasedOnSign": "House4", "IsPlanetBenefic": true}}
			]}
		}`))
	})

	u := testUser("Delhi")
	resp, err := client.FetchPlanetData(context.Background(), u.Place, u.TimeSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "/api/Calculate/AllPlanetData/PlanetName/All/Location/Delhi/Time/10:30/01/02/1990/+05:30/Ayanamsa/RAMAN"
	if gotPath != want {
		t.Errorf("path mismatch\n got: %s\nwant: %s", gotPath, want)
	}
	if len(resp.Payload.AllPlanetData) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Payload.AllPlanetData))
	}
	sun := resp.Payload.AllPlanetData[0]["Sun"]
	if sun.HousePlanetOccupiesBasedOnSign != "House10" || sun.IsPlanetBenefic != false {
		t.Errorf("unexpected Sun entry %+v", sun)
	}
	if resp.Payload.AllPlanetData[1]["Moon"].PlanetsInConjunction != nil {
		t.Error("expected missing conjunction list to stay nil")
	}
}

func TestFetchHouseData_StatusFailure(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down"))
	})

	_, err := client.FetchHouseData(context.Background(), "Delhi", "10:30/01/02/1990/+05:30")

	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	wantMsg := "VedAstro Calculate/AllHouseData/HouseName/All/Location/Delhi/Time/10:30/01/02/1990/+05:30/Ayanamsa/RAMAN failed"
	if upErr.Message != wantMsg {
		t.Errorf("unexpected message %q", upErr.Message)
	}
}

func TestFetchHouseData_BadJSON(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.FetchHouseData(context.Background(), "Delhi", "10:30/01/02/1990/+05:30")

	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if !strings.HasSuffix(upErr.Message, "failed") {
		t.Errorf("unexpected message %q", upErr.Message)
	}
}

func TestFetchHouseData_CreatedIsSuccess(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"Payload":{"AllHouseData":[{"House1":{"LordOfHouse":{"Name":"Mars"},"HouseRasiSign":{"Name":"Aries"}}}]}}`))
	})

	resp, err := client.FetchHouseData(context.Background(), "Delhi", "10:30/01/02/1990/+05:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := resp.Payload.AllHouseData[0]["House1"]
	if h.LordOfHouse == nil || *h.LordOfHouse.Name != "Mars" {
		t.Errorf("unexpected house %+v", h)
	}
}

func TestFetchChartSVG_StrayPercentInPlace(t *testing.T) {
	cases := map[string]string{
		"St. 100% Town": "/Location/St. 100% Town/Time/",
		"Trail%":        "/Location/Trail%/Time/",
		"New%20Delhi":   "/Location/New Delhi/Time/",
	}

	for place, wantPart := range cases {
		t.Run(place, func(t *testing.T) {
			var gotPath string
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = w.Write([]byte("<svg/>"))
			})

			svg, err := client.FetchChartSVG(context.Background(), testUser(place))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if svg != "<svg/>" {
				t.Errorf("unexpected body %q", svg)
			}
			if !strings.Contains(gotPath, wantPart) {
				t.Errorf("path %q does not contain %q", gotPath, wantPart)
			}
		})
	}
}

func TestFetchHouseData_StrayPercentKeepsRawMessage(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchHouseData(context.Background(), "100% Town", "10:30/01/02/1990/+05:30")

	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if !strings.Contains(upErr.Message, "/Location/100% Town/Time/") {
		t.Errorf("unexpected message %q", upErr.Message)
	}
}
