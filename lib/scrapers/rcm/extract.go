package rcm

import (
	"regexp"
	"strings"

	"fueltrack-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// postbackTokens is the hidden-field state WebForms requires to be
// echoed back on every form submission. A page is only considered
// loaded once viewState is present; whether eventValidation is also
// mandatory depends on the page, so callers check for themselves.
type postbackTokens struct {
	viewState          string
	viewStateGenerator string
	eventValidation    string
}

func parsePostbackTokens(body string) (postbackTokens, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return postbackTokens{}, err
	}
	return postbackTokens{
		viewState:          doc.Find(`input#__VIEWSTATE`).AttrOr("value", ""),
		viewStateGenerator: doc.Find(`input#__VIEWSTATEGENERATOR`).AttrOr("value", ""),
		eventValidation:    doc.Find(`input#__EVENTVALIDATION`).AttrOr("value", ""),
	}, nil
}

// reservation numbers only appear inside the onclick handler of the
// reservation-number cell, as a path segment of the popup url
var reservationNumberRegex = regexp.MustCompile(`ReportPopup\('[^']*?/(\d+)/`)

// reservationNumber pulls the number out of a row's onclick handlers.
// The handler may sit on the row itself or on any element inside it.
// Attribute values are read directly off the parse tree; rendering the
// row back to HTML would entity-escape the quotes in the handler.
func reservationNumber(row *goquery.Selection) string {
	if m := reservationNumberRegex.FindStringSubmatch(row.AttrOr("onclick", "")); m != nil {
		return m[1]
	}
	var found string
	row.Find("[onclick]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		m := reservationNumberRegex.FindStringSubmatch(el.AttrOr("onclick", ""))
		if m != nil {
			found = m[1]
			return false
		}
		return true
	})
	return found
}

// extractConfirmedReservations scrapes the "Confirmed" results table
// out of a report page. A missing table means no results, not an
// error; rows that don't look like data rows are dropped silently.
func extractConfirmedReservations(body string) []Reservation {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}
	table := doc.Find(`table#Confirmed`).First()
	if table.Length() == 0 {
		return nil
	}

	var results []Reservation
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return
		}

		resNo := reservationNumber(row)
		if resNo == "" {
			return
		}

		cells := row.Find("td")
		if cells.Length() < 5 {
			return
		}

		// cell 6 may be absent on short rows, in which case the
		// vehicle description degrades to ""
		results = append(results, Reservation{
			ReservationNumber:  resNo,
			CustomerName:       cleanCell(cells.Eq(4)),
			VehicleDescription: cleanCell(cells.Eq(6)),
		})
	})
	return results
}

func cleanCell(cell *goquery.Selection) string {
	inner, err := cell.Html()
	if err != nil {
		return strings.TrimSpace(cell.Text())
	}
	return htmlutil.CleanText(inner)
}
