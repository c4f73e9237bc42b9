package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const testToken = "11235813213455"

func TestClientDashboard(t *testing.T) {
	testDashboard := Dashboard{
		StudentName:          "Akinyi Otieno",
		AttendancePercentage: 96.5,
		FeeBalance:           12500,
		TimetableToday: []TimetableSlot{
			{
				Type:      "lesson",
				Subject:   "Mathematics",
				StartTime: "08:00",
				EndTime:   "08:40",
			},
			{Type: "break", StartTime: "10:00", EndTime: "10:20"},
		},
	}
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/student/portal/dashboard", r.URL.Path)
				require.Equal(
					t,
					fmt.Sprintf("Bearer %s", testToken),
					r.Header.Get("Authorization"),
				)
				bodyBytes, err := json.Marshal(testDashboard)
				require.NoError(t, err)
				fmt.Fprintln(w, string(bodyBytes))
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, true)
	dashboard, err := client.Dashboard(context.Background(), testToken)
	require.NoError(t, err)
	require.Equal(t, testDashboard, dashboard)
}

func TestClientLedger(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/student/portal/ledger", r.URL.Path)
				fmt.Fprintln(
					w,
					`{"balance": 4500, "history": [{"date": "2026-08-12", "description": "Term 3 fees", "type": "charge", "amount": 15000}, {"date": "2026-08-20", "description": "MPESA payment", "type": "payment", "amount": 10500}]}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, true)
	ledger, err := client.Ledger(context.Background(), testToken)
	require.NoError(t, err)
	require.Equal(t, float64(4500), ledger.Balance)
	require.Len(t, ledger.History, 2)
	require.Equal(t, "charge", ledger.History[0].Type)
}

func TestClientResultsAndSubjects(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/api/student/portal/results":
					fmt.Fprintln(
						w,
						`[{"subject": "Mathematics", "exam_type": "End Term", "term": "Term 2", "year": 2026, "marks": 78}]`,
					)
				case "/api/student/portal/subjects":
					fmt.Fprintln(
						w,
						`[{"id": "sub1", "name": "Mathematics", "teacher": "B. Wekesa"}]`,
					)
				case "/api/student/portal/subjects/sub1":
					fmt.Fprintln(
						w,
						`{"id": "sub1", "name": "Mathematics", "materials": [{"title": "Algebra notes", "file_type": "pdf", "file_url": "https://files.example.sc.ke/algebra.pdf"}]}`,
					)
				default:
					t.Fatalf("unexpected path %s", r.URL.Path)
				}
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, true)

	results, err := client.Results(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, float64(78), results[0].Marks)

	subjects, err := client.Subjects(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, subjects, 1)

	detail, err := client.Subject(context.Background(), testToken, "sub1")
	require.NoError(t, err)
	require.Len(t, detail.Materials, 1)
	require.Equal(t, "pdf", detail.Materials[0].FileType)
}

func TestClientMe(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/student/auth/me", r.URL.Path)
				fmt.Fprintln(
					w,
					`{"admission_number": "ADM001", "full_name": "Akinyi Otieno", "class_name": "Form 3", "stream": "North"}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, true)
	profile, err := client.Me(context.Background(), testToken)
	require.NoError(t, err)
	require.Equal(t, "ADM001", profile.AdmissionNumber)
	require.Equal(t, "Form 3", profile.ClassName)
}
