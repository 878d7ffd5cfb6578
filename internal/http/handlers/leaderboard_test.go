package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Goptar/gopgang-api/internal/domain"
)

func getJSON(t *testing.T, handler http.HandlerFunc, target string) (*httptest.ResponseRecorder, []domain.Participant) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	var list []domain.Participant
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rr, list
}

func TestTopRaisedOrdering(t *testing.T) {
	app := newTestApp()
	postDonation(t, app, `{"donatorUserId":"A","donatorName":"Alice","recipientUserId":"B","recipientName":"Bob","amount":100}`)
	postDonation(t, app, `{"donatorUserId":"B","donatorName":"Bob","recipientUserId":"A","recipientName":"Alice","amount":30}`)

	rr, list := getJSON(t, app.TopRaised, "/api/top-raised?limit=2")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if len(list) != 2 || list[0].ID != "B" || list[0].TotalRaised != 100 || list[1].ID != "A" || list[1].TotalRaised != 30 {
		t.Fatalf("unexpected ordering: %#v", list)
	}

	_, donated := getJSON(t, app.TopDonated, "/api/top-donated")
	if donated[0].ID != "A" || donated[0].TotalDonated != 100 {
		t.Fatalf("unexpected donated ordering: %#v", donated)
	}
}

func TestTopRaisedLimitHandling(t *testing.T) {
	app := newTestApp()
	for i := 0; i < 15; i++ {
		postDonation(t, app, fmt.Sprintf(`{"donatorUserId":"d","recipientUserId":"r%d","amount":%d}`, i, i+1))
	}

	_, list := getJSON(t, app.TopRaised, "/api/top-raised?limit=3")
	if len(list) != 3 {
		t.Fatalf("limit=3: got %d entries", len(list))
	}

	// Missing and non-numeric limits fall back to the default of 10.
	_, list = getJSON(t, app.TopRaised, "/api/top-raised")
	if len(list) != 10 {
		t.Fatalf("default limit: got %d entries", len(list))
	}
	_, list = getJSON(t, app.TopRaised, "/api/top-raised?limit=banana")
	if len(list) != 10 {
		t.Fatalf("non-numeric limit: got %d entries", len(list))
	}
}

func TestTopRaisedEmptyStoreIsEmptyArray(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/top-raised", nil)
	rr := httptest.NewRecorder()
	app.TopRaised(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if body := rr.Body.String(); body != "[]\n" {
		t.Fatalf("empty store must encode as [], got %q", body)
	}
}
