package handlers

import (
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"

	"pricingtool/services"
	"pricingtool/templates"
	"pricingtool/testhelpers"
)

func TestHandleHistoryList_Empty(t *testing.T) {
	ledger := testhelpers.NewTestLedger(t)

	resp := call(t, HandleHistoryList(ledger, "EUR"), http.MethodGet, "/history", nil, false)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	testhelpers.AssertHTMLContains(t, resp.Body, "No historical data found.", "Add New Project")
	if strings.Contains(resp.Body, "/history/export.csv") {
		t.Error("export links should be hidden when there are no records")
	}
	if _, err := os.Stat(ledger.Path()); !os.IsNotExist(err) {
		t.Error("listing must not create the ledger file")
	}
}

func TestHandleHistoryList_WithRecords(t *testing.T) {
	ledger := testhelpers.NewTestLedger(t)
	testhelpers.SeedLedger(t, ledger,
		services.ProjectRecord{ProjectName: "Acme", ClientName: "Bob", TotalCost: 105},
		services.ProjectRecord{ProjectName: "<Globex>", ClientName: "Hank", TotalCost: 1234.5},
	)

	resp := call(t, HandleHistoryList(ledger, "EUR"), http.MethodGet, "/history", nil, false)

	testhelpers.AssertHTMLContains(t, resp.Body,
		"<td>Acme</td>",
		"105.00 EUR",
		"&lt;Globex&gt;",
		"1,234.50 EUR",
		"/history/export.csv",
		"/history/export.xlsx",
	)
	if strings.Index(resp.Body, "Acme") > strings.Index(resp.Body, "&lt;Globex&gt;") {
		t.Error("records should render in ledger order")
	}
}

func TestHandleHistoryList_PrefillsTotal(t *testing.T) {
	ledger := testhelpers.NewTestLedger(t)

	resp := call(t, HandleHistoryList(ledger, "EUR"), http.MethodGet, "/history?total_cost=105", nil, false)

	testhelpers.AssertHTMLContains(t, resp.Body, `name="total_cost" type="number" min="0" step="any" value="105"`)
}

func TestHandleHistoryList_CorruptLedger(t *testing.T) {
	ledger := testhelpers.NewTestLedger(t)
	if err := os.WriteFile(ledger.Path(), []byte("not,a,ledger\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	resp := call(t, HandleHistoryList(ledger, "EUR"), http.MethodGet, "/history", nil, true)

	if resp.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.Code)
	}
	if resp.Toast == nil || resp.Toast["type"] != ToastError {
		t.Errorf("expected error toast, got %v", resp.Toast)
	}
}

func TestHandleHistorySave_Success(t *testing.T) {
	tests := []struct {
		name         string
		htmx         bool
		wantCode     int
		wantRedirect string
	}{
		{"htmx", true, http.StatusOK, ""},
		{"plain form", false, http.StatusFound, "/history"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := testhelpers.NewTestLedger(t)
			form := url.Values{
				"project_name": {"  Acme  "},
				"client_name":  {"Bob"},
				"total_cost":   {"105"},
			}

			resp := call(t, HandleHistorySave(ledger, "EUR"), http.MethodPost, "/history", form, tt.htmx)

			if resp.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", resp.Code, tt.wantCode)
			}
			if tt.htmx {
				testhelpers.AssertHXRedirect(t, resp.Header.Get("HX-Redirect"), "/history")
			} else if loc := resp.Header.Get("Location"); loc != tt.wantRedirect {
				t.Errorf("Location = %q, want %q", loc, tt.wantRedirect)
			}
			if resp.Toast == nil || resp.Toast["message"] != "Project saved successfully!" {
				t.Errorf("unexpected toast %v", resp.Toast)
			}

			records, err := ledger.LoadAll()
			if err != nil {
				t.Fatalf("LoadAll() error = %v", err)
			}
			want := services.ProjectRecord{ProjectName: "Acme", ClientName: "Bob", TotalCost: 105}
			if len(records) != 1 || records[0] != want {
				t.Errorf("records = %+v, want [%+v]", records, want)
			}
		})
	}
}

func TestHandleHistorySave_MissingFields(t *testing.T) {
	ledger := testhelpers.NewTestLedger(t)
	form := url.Values{"project_name": {"   "}, "client_name": {""}, "total_cost": {"105"}}

	resp := call(t, HandleHistorySave(ledger, "EUR"), http.MethodPost, "/history", form, true)

	if resp.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.Code)
	}
	if resp.Toast == nil || resp.Toast["message"] != "Please fill out all fields before saving." {
		t.Errorf("unexpected toast %v", resp.Toast)
	}
	testhelpers.AssertHTMLContains(t, resp.Body,
		`data-field="project_name"`,
		`data-field="client_name"`,
		`value="105"`,
	)
	if _, err := os.Stat(ledger.Path()); !os.IsNotExist(err) {
		t.Error("rejected save must not create the ledger file")
	}
}

func TestHandleHistorySave_InvalidTotal(t *testing.T) {
	ledger := testhelpers.NewTestLedger(t)
	form := url.Values{"project_name": {"Acme"}, "client_name": {"Bob"}, "total_cost": {"abc"}}

	resp := call(t, HandleHistorySave(ledger, "EUR"), http.MethodPost, "/history", form, true)

	testhelpers.AssertHTMLContains(t, resp.Body, `data-field="total_cost"`)
	if resp.Toast == nil || resp.Toast["message"] != "Total cost must be a number." {
		t.Errorf("unexpected toast %v", resp.Toast)
	}
	records, _ := ledger.LoadAll()
	if len(records) != 0 {
		t.Errorf("expected nothing saved, got %+v", records)
	}
}

func TestParseTotalCost(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"105", 105, false},
		{"54.25", 54.25, false},
		{"-3", 0, false},
		{"abc", 0, true},
		{"Inf", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseTotalCost(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTotalCost(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseTotalCost(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSaveWarning(t *testing.T) {
	filled := templates.ProjectForm{ProjectName: "Acme", ClientName: "Bob"}
	tests := []struct {
		name string
		form templates.ProjectForm
		errs map[string]string
		want string
	}{
		{"missing project", templates.ProjectForm{ClientName: "Bob"}, map[string]string{"project_name": "x"}, "Please fill out all fields before saving."},
		{"missing client and bad total", templates.ProjectForm{ProjectName: "Acme"}, map[string]string{"client_name": "x", "total_cost": "y"}, "Please fill out all fields before saving."},
		{"bad total only", filled, map[string]string{"total_cost": "y"}, "Total cost must be a number."},
		{"rejected name", filled, map[string]string{"project_name": "z"}, "Please fix the errors below."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := saveWarning(tt.form, tt.errs); got != tt.want {
				t.Errorf("saveWarning() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandleHistorySave_MissingNamesAndInvalidTotal(t *testing.T) {
	ledger := testhelpers.NewTestLedger(t)
	form := url.Values{"project_name": {""}, "client_name": {"Bob"}, "total_cost": {"abc"}}

	resp := call(t, HandleHistorySave(ledger, "EUR"), http.MethodPost, "/history", form, true)

	testhelpers.AssertHTMLContains(t, resp.Body, `data-field="project_name"`, `data-field="total_cost"`)
	if resp.Toast == nil || resp.Toast["message"] != "Please fill out all fields before saving." {
		t.Errorf("unexpected toast %v", resp.Toast)
	}
}

func TestHandleHistorySave_CarriageReturnRejected(t *testing.T) {
	ledger := testhelpers.NewTestLedger(t)
	form := url.Values{"project_name": {"A\r\nB"}, "client_name": {"Bob"}, "total_cost": {"1"}}

	resp := call(t, HandleHistorySave(ledger, "EUR"), http.MethodPost, "/history", form, true)

	testhelpers.AssertHTMLContains(t, resp.Body, `data-field="project_name"`)
	if resp.Toast == nil || resp.Toast["message"] != "Please fix the errors below." {
		t.Errorf("unexpected toast %v", resp.Toast)
	}
	if _, err := os.Stat(ledger.Path()); !os.IsNotExist(err) {
		t.Error("rejected save must not create the ledger file")
	}
}
