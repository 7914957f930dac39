package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"taxbook/models"
)

func detailsForm() url.Values {
	return url.Values{
		"gstRegistered":   {"true"},
		"firstName":       {"Jane"},
		"lastName":        {"Doe"},
		"email":           {"jane@example.com"},
		"phone":           {"0271000762"},
		"permanentIncome": {"52000"},
	}
}

func TestPersonalDetailsSingleton(t *testing.T) {
	db, engine := setup(t)

	w := postForm(t, engine, "/api/v1/personal-details", detailsForm())
	if w.Code != http.StatusCreated {
		t.Fatalf("first create status = %d, body = %s", w.Code, w.Body.String())
	}

	w = postForm(t, engine, "/api/v1/personal-details", detailsForm())
	if w.Code != http.StatusConflict {
		t.Fatalf("second create status = %d, want 409", w.Code)
	}

	var n int64
	if err := db.Model(&models.PersonalDetails{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("personal details rows = %d, want exactly 1", n)
	}
}

func TestPersonalDetailsGetCreatesDefault(t *testing.T) {
	db, engine := setup(t)

	w := doRequest(t, engine, http.MethodGet, "/api/v1/personal-details")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var p models.PersonalDetails
	decode(t, w, &p)
	if p.GSTRegistered || p.FirstName != "" || !p.PermanentIncome.IsZero() {
		t.Errorf("expected a zeroed default record, got %+v", p)
	}

	var n int64
	if err := db.Model(&models.PersonalDetails{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("rows after first load = %d, want 1", n)
	}
}

func TestPersonalDetailsUpdate(t *testing.T) {
	_, engine := setup(t)

	form := detailsForm()
	req := newPutForm(t, "/api/v1/personal-details", form)
	w := serve(engine, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}
	var p models.PersonalDetails
	decode(t, w, &p)
	if !p.GSTRegistered || p.FirstName != "Jane" {
		t.Errorf("update not applied: %+v", p)
	}

	// A second update edits the same row rather than tripping the singleton
	// guard.
	form.Set("firstName", "Janet")
	w = serve(engine, newPutForm(t, "/api/v1/personal-details", form))
	if w.Code != http.StatusOK {
		t.Fatalf("second update status = %d, body = %s", w.Code, w.Body.String())
	}
	decode(t, w, &p)
	if p.FirstName != "Janet" {
		t.Errorf("firstName = %q, want Janet", p.FirstName)
	}
}
