package rcm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchReservations(t *testing.T) {
	var postedForm map[string]string
	var getCookie string

	mux := http.NewServeMux()
	mux.HandleFunc("/rcmreports/reservationreport.aspx", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			getCookie = r.Header.Get("Cookie")
			fmt.Fprint(w, reportPageFixture)
			return
		}
		require.NoError(t, r.ParseForm())
		postedForm = map[string]string{}
		for k := range r.PostForm {
			postedForm[k] = r.PostForm.Get(k)
		}
		fmt.Fprint(w, confirmedTableFixture)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, server.URL)
	results, err := client.SearchReservations(
		context.Background(), "KPT472", "ASP.NET_SessionId=abc123", "14/03/2025")
	require.NoError(t, err)

	require.Len(t, results, 3)
	require.Equal(t, "104231", results[0].ReservationNumber)
	require.Equal(t, "SMITH, John", results[0].CustomerName)

	require.Equal(t, "ASP.NET_SessionId=abc123", getCookie)

	// the postback has to look like the report page's own "run report"
	// click or the server returns the blank report shell
	require.Equal(t, "ctl00$mainContent$btnRunReport", postedForm["__EVENTTARGET"])
	require.Equal(t, "/wEPDwULLTE0OTY5MzM0MzJkZLfJW8RouMyv", postedForm["__VIEWSTATE"])
	require.Equal(t, "rego", postedForm["ctl00$mainContent$ddlSearchBy"])
	require.Equal(t, "KPT472", postedForm["ctl00$mainContent$txtSearch"])
	require.Equal(t, "14/03/2025", postedForm["ctl00$mainContent$txtStartDate"])
	require.Equal(t, "14/03/2025", postedForm["ctl00$mainContent$txtEndDate"])
	require.Equal(t, "0", postedForm["ctl00$mainContent$ddlBranch"])
	require.Equal(t, "off", postedForm["ctl00$mainContent$chkPaging"])
	require.Equal(t, "{}", postedForm["ctl00$mainContent$hdnReportState"])
	require.Equal(t, "{}", postedForm["ctl00$mainContent$hdnColumnState"])
}

func TestSearchReservationsFollowsRedirectToReportPage(t *testing.T) {
	// an expired or half-initialized session can bounce through an
	// interstitial before landing on the report page
	mux := http.NewServeMux()
	mux.HandleFunc("/rcmreports/reservationreport.aspx", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.Redirect(w, r, "/rcmreports/reservationreport2.aspx", http.StatusFound)
			return
		}
		fmt.Fprint(w, confirmedTableFixture)
	})
	mux.HandleFunc("/rcmreports/reservationreport2.aspx", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, reportPageFixture)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.SearchReservations(context.Background(), "KPT472", "", "14/03/2025")
	require.NoError(t, err)
}

func TestSearchReservationsMissingViewState(t *testing.T) {
	postCount := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/rcmreports/reservationreport.aspx", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			// a session timeout renders the login page instead of the
			// report, which carries no usable report viewstate
			fmt.Fprint(w, "<html><body><form></form></body></html>")
			return
		}
		postCount++
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.SearchReservations(context.Background(), "KPT472", "", "14/03/2025")
	require.ErrorIs(t, err, ErrReportPage)
	require.Zero(t, postCount)
}

func TestSearchReservationsNoMatches(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rcmreports/reservationreport.aspx", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprint(w, reportPageFixture)
			return
		}
		fmt.Fprint(w, `<html><body><table id="Confirmed"><tr><th>No rows</th></tr></table></body></html>`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, server.URL)
	results, err := client.SearchReservations(context.Background(), "NOPE99", "", "14/03/2025")
	require.NoError(t, err)
	require.Empty(t, results)
}
