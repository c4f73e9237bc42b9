package kitabu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStudentsClient(t *testing.T) {
	client := NewStudentsClient(testAPIAddress, testClientAllowInsecure)
	require.IsType(t, &studentsClient{}, client)
	requireBaseClient(t, client.(*studentsClient).BaseClient)
}

func TestStudentsClientList(t *testing.T) {
	testStudentList := StudentList{
		Items: []Student{
			{
				ID:              "s1",
				AdmissionNumber: "ADM-0042",
				FullName:        "Akinyi Otieno",
				ClassID:         "c1",
				ClassName:       "Form 2",
				Stream:          "East",
				FullClass:       "Form 2 East",
			},
		},
		Total: 1,
	}
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/students", r.URL.Path)
				require.Equal(t, "20", r.URL.Query().Get("skip"))
				require.Equal(t, "100", r.URL.Query().Get("limit"))
				require.Equal(t, "akinyi", r.URL.Query().Get("search"))
				require.Equal(t, "c1", r.URL.Query().Get("class_id"))
				require.Equal(t, "st1", r.URL.Query().Get("stream_id"))
				require.Equal(
					t,
					fmt.Sprintf("Bearer %s", testAPIToken),
					r.Header.Get("Authorization"),
				)
				bodyBytes, err := json.Marshal(testStudentList)
				require.NoError(t, err)
				fmt.Fprintln(w, string(bodyBytes))
			},
		),
	)
	defer server.Close()
	client := NewStudentsClient(server.URL, testClientAllowInsecure)
	studentList, err := client.List(
		context.Background(),
		testAPIToken,
		StudentListOptions{
			Skip:     20,
			Search:   "akinyi",
			ClassID:  "c1",
			StreamID: "st1",
		},
	)
	require.NoError(t, err)
	require.Equal(t, testStudentList, studentList)
}

func TestStudentsClientListOmitsEmptyFilters(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.False(t, queryHas(r, "search"))
				require.False(t, queryHas(r, "class_id"))
				require.False(t, queryHas(r, "stream_id"))
				fmt.Fprintln(w, `{"items": [], "total": 0}`)
			},
		),
	)
	defer server.Close()
	client := NewStudentsClient(server.URL, testClientAllowInsecure)
	_, err := client.List(
		context.Background(),
		testAPIToken,
		StudentListOptions{},
	)
	require.NoError(t, err)
}

func TestStudentsClientCreate(t *testing.T) {
	testStudent := Student{
		AdmissionNumber: "ADM-0099",
		FullName:        "Baraka Mwangi",
		ClassID:         "c1",
	}
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/students", r.URL.Path)
				student := Student{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&student))
				require.Equal(t, testStudent, student)
				student.ID = "s2"
				bodyBytes, err := json.Marshal(student)
				require.NoError(t, err)
				fmt.Fprintln(w, string(bodyBytes))
			},
		),
	)
	defer server.Close()
	client := NewStudentsClient(server.URL, testClientAllowInsecure)
	created, err := client.Create(context.Background(), testAPIToken, testStudent)
	require.NoError(t, err)
	require.Equal(t, "s2", created.ID)
}

func TestStudentsClientUpdate(t *testing.T) {
	classID := "c2"
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPatch, r.Method)
				require.Equal(t, "/students/s2", r.URL.Path)
				update := StudentUpdate{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
				require.Nil(t, update.FullName)
				require.NotNil(t, update.ClassID)
				require.Equal(t, classID, *update.ClassID)
				fmt.Fprintln(
					w,
					`{"id": "s2", "admission_number": "ADM-0099", "full_name": "Baraka Mwangi", "class_id": "c2"}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewStudentsClient(server.URL, testClientAllowInsecure)
	updated, err := client.Update(
		context.Background(),
		testAPIToken,
		"s2",
		StudentUpdate{ClassID: &classID},
	)
	require.NoError(t, err)
	require.Equal(t, "c2", updated.ClassID)
}

func TestStudentsClientDelete(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(t, "/students/s2", r.URL.Path)
				fmt.Fprintln(w, "{}")
			},
		),
	)
	defer server.Close()
	client := NewStudentsClient(server.URL, testClientAllowInsecure)
	err := client.Delete(context.Background(), testAPIToken, "s2")
	require.NoError(t, err)
}
