package portal

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kitabu/kitabu"
)

type Profile struct {
	AdmissionNumber string `json:"admission_number"`
	FullName        string `json:"full_name"`
	ClassName       string `json:"class_name,omitempty"`
	Stream          string `json:"stream,omitempty"`
	ProfilePhoto    string `json:"profile_photo,omitempty"`
	Email           string `json:"email,omitempty"`
}

type Announcement struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Date  string `json:"date,omitempty"`
}

type TimetableSlot struct {
	Type      string `json:"type"`
	Subject   string `json:"subject,omitempty"`
	Teacher   string `json:"teacher,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AssignmentSummary struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Subject string `json:"subject,omitempty"`
	DueDate string `json:"due_date,omitempty"`
	Status  string `json:"status,omitempty"`
}

type SubjectAttendance struct {
	Subject    string  `json:"subject"`
	Percentage float64 `json:"percentage"`
}

type Dashboard struct {
	StudentName          string                     `json:"student_name"`
	AttendancePercentage float64                    `json:"attendance_percentage"`
	FeeBalance           float64                    `json:"fee_balance"`
	Announcements        []Announcement             `json:"announcements,omitempty"`
	UpcomingAssignments  []AssignmentSummary        `json:"upcoming_assignments,omitempty"`
	OverdueAssignments   []AssignmentSummary        `json:"overdue_assignments,omitempty"`
	TimetableToday       []TimetableSlot            `json:"timetable_today,omitempty"`
	TimetableWeekly      map[string][]TimetableSlot `json:"timetable_weekly,omitempty"`
	SubjectAttendance    []SubjectAttendance        `json:"subject_attendance,omitempty"`
}

type LedgerEntry struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
}

type Ledger struct {
	Balance float64       `json:"balance"`
	History []LedgerEntry `json:"history"`
}

type ExamResult struct {
	ID       string  `json:"id,omitempty"`
	Subject  string  `json:"subject"`
	ExamType string  `json:"exam_type"`
	Term     string  `json:"term"`
	Year     int     `json:"year"`
	Marks    float64 `json:"marks"`
	Grade    string  `json:"grade,omitempty"`
}

type Subject struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Teacher string `json:"teacher,omitempty"`
}

type Material struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	FileType string `json:"file_type"`
	FileURL  string `json:"file_url"`
}

type SubjectDetail struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Teacher   string     `json:"teacher,omitempty"`
	Materials []Material `json:"materials,omitempty"`
}

// OnboardingIdentity is the backend's confirmation of who an admission number
// belongs to, shown to the student before they choose a password.
type OnboardingIdentity struct {
	FullName string `json:"full_name"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Client is the client for the student portal API. It is a pure fetch layer:
// it attaches whatever token the caller hands it, maps response statuses to
// the error taxonomy, and performs no navigation and no storage side effects.
// Session owns those reactions.
type Client interface {
	// Login exchanges an admission number and password for an access token.
	Login(
		ctx context.Context,
		admissionNumber string,
		password string,
	) (string, error)
	VerifyOnboarding(
		ctx context.Context,
		admissionNumber string,
	) (OnboardingIdentity, error)
	// ActivateOnboarding sets the student's first password and returns an
	// access token.
	ActivateOnboarding(
		ctx context.Context,
		admissionNumber string,
		newPassword string,
	) (string, error)
	Me(ctx context.Context, token string) (Profile, error)
	Dashboard(ctx context.Context, token string) (Dashboard, error)
	Ledger(ctx context.Context, token string) (Ledger, error)
	Results(ctx context.Context, token string) ([]ExamResult, error)
	Subjects(ctx context.Context, token string) ([]Subject, error)
	Subject(
		ctx context.Context,
		token string,
		id string,
	) (SubjectDetail, error)
}

type client struct {
	*kitabu.BaseClient
}

// NewClient returns a client for the student portal API.
func NewClient(apiAddress string, allowInsecure bool) Client {
	return &client{
		BaseClient: kitabu.NewBaseClient(apiAddress, allowInsecure),
	}
}

func (c *client) Login(
	ctx context.Context,
	admissionNumber string,
	password string,
) (string, error) {
	resp := tokenResponse{}
	return resp.AccessToken, c.ExecuteRequest(
		ctx,
		kitabu.OutboundRequest{
			Method: http.MethodPost,
			Path:   "api/student/auth/login",
			ReqBodyObj: url.Values{
				"username": []string{admissionNumber},
				"password": []string{password},
			},
			SuccessCode: http.StatusOK,
			RespObj:     &resp,
		},
	)
}

func (c *client) VerifyOnboarding(
	ctx context.Context,
	admissionNumber string,
) (OnboardingIdentity, error) {
	identity := OnboardingIdentity{}
	return identity, c.ExecuteRequest(
		ctx,
		kitabu.OutboundRequest{
			Method: http.MethodPost,
			Path:   "api/student/auth/onboard/verify",
			QueryParams: map[string]string{
				"admission_number": admissionNumber,
			},
			SuccessCode: http.StatusOK,
			RespObj:     &identity,
		},
	)
}

func (c *client) ActivateOnboarding(
	ctx context.Context,
	admissionNumber string,
	newPassword string,
) (string, error) {
	resp := tokenResponse{}
	return resp.AccessToken, c.ExecuteRequest(
		ctx,
		kitabu.OutboundRequest{
			Method: http.MethodPost,
			Path:   "api/student/auth/onboard/activate",
			QueryParams: map[string]string{
				"admission_number": admissionNumber,
				"new_password":     newPassword,
			},
			SuccessCode: http.StatusOK,
			RespObj:     &resp,
		},
	)
}

func (c *client) Me(ctx context.Context, token string) (Profile, error) {
	profile := Profile{}
	return profile, c.ExecuteRequest(
		ctx,
		kitabu.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/student/auth/me",
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &profile,
		},
	)
}

func (c *client) Dashboard(
	ctx context.Context,
	token string,
) (Dashboard, error) {
	dashboard := Dashboard{}
	return dashboard, c.ExecuteRequest(
		ctx,
		kitabu.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/student/portal/dashboard",
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &dashboard,
		},
	)
}

func (c *client) Ledger(ctx context.Context, token string) (Ledger, error) {
	ledger := Ledger{}
	return ledger, c.ExecuteRequest(
		ctx,
		kitabu.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/student/portal/ledger",
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &ledger,
		},
	)
}

func (c *client) Results(
	ctx context.Context,
	token string,
) ([]ExamResult, error) {
	results := []ExamResult{}
	return results, c.ExecuteRequest(
		ctx,
		kitabu.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/student/portal/results",
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &results,
		},
	)
}

func (c *client) Subjects(
	ctx context.Context,
	token string,
) ([]Subject, error) {
	subjects := []Subject{}
	return subjects, c.ExecuteRequest(
		ctx,
		kitabu.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/student/portal/subjects",
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &subjects,
		},
	)
}

func (c *client) Subject(
	ctx context.Context,
	token string,
	id string,
) (SubjectDetail, error) {
	detail := SubjectDetail{}
	return detail, c.ExecuteRequest(
		ctx,
		kitabu.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("api/student/portal/subjects/%s", id),
			AuthHeaders: c.BearerTokenAuthHeaders(token),
			SuccessCode: http.StatusOK,
			RespObj:     &detail,
		},
	)
}
