package main

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRunEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v3/users":
			if r.URL.Query().Get("dtContractEnd") == "notequal,null" {
				w.Write([]byte(`{"data":{"items":[
					{"firstName":"Carl","lastName":"Diaz","gender":"M","birthDate":"1980-02-02","jobTitle":"Analyst","department":{"name":"Sales"},"dtContractStart":"2015-01-01","dtContractEnd":"2023-06-30"}
				]}}`))
				return
			}
			w.Write([]byte(`{"data":{"items":[
				{"firstName":"Ann","lastName":"Lee","gender":"F","birthDate":"1990-01-01","jobTitle":"Engineer","department":{"name":"Engineering"},"dtContractStart":"2020-01-01","dtContractEnd":null}
			]}}`))
		case "/api/v3/departments":
			w.Write([]byte(`{"data":{"items":[
				{"name":"Engineering","currentUsersCount":12,"hierarchy":{"id":1}}
			]}}`))
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("URL_API_LUCCA", server.URL)
	t.Setenv("TOKEN_API_LUCCA", "test-token")

	outDir := t.TempDir()
	if err := run(outDir, false, false); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	employeesRows := readCSV(t, filepath.Join(outDir, "employees.csv"))
	wantEmployees := [][]string{
		{"firstName", "lastName", "gender", "birthDate", "jobTitle", "department", "dtContractStart", "dtContractEnd"},
		{"Ann", "Lee", "F", "1990-01-01", "Engineer", "Engineering", "2020-01-01", ""},
		{"Carl", "Diaz", "M", "1980-02-02", "Analyst", "Sales", "2015-01-01", "2023-06-30"},
	}
	if !reflect.DeepEqual(employeesRows, wantEmployees) {
		t.Errorf("employees.csv = %v, want %v", employeesRows, wantEmployees)
	}

	departmentsRows := readCSV(t, filepath.Join(outDir, "departments.csv"))
	wantDepartments := [][]string{
		{"name", "currentUsersCount", "hierarchy"},
		{"Engineering", "12", `{"id":1}`},
	}
	if !reflect.DeepEqual(departmentsRows, wantDepartments) {
		t.Errorf("departments.csv = %v, want %v", departmentsRows, wantDepartments)
	}
}

func TestRunTotalOutageStillWritesFiles(t *testing.T) {
	// Dead endpoint: both fetches degrade to empty, run still succeeds.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	t.Setenv("URL_API_LUCCA", server.URL)
	t.Setenv("TOKEN_API_LUCCA", "test-token")

	outDir := t.TempDir()
	if err := run(outDir, false, false); err != nil {
		t.Fatalf("Expected run() to succeed on total outage, got %v", err)
	}

	for _, name := range []string{"employees.csv", "departments.csv"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("Expected %s to exist, got %v", name, err)
		}
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	return rows
}
