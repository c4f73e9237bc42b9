package kitabu

// Client is the aggregated client for the staff-facing Kitabu API. Every call
// takes the bearer token explicitly: tokens are obtained from the identity
// provider per request and are not cached here.
type Client interface {
	Books() BooksClient
	Students() StudentsClient
	Classes() ClassesClient
	Borrows() BorrowsClient
	Analytics() AnalyticsClient
	Logs() LogsClient
	Config() ConfigClient
	Users() UsersClient
}

type client struct {
	booksClient     BooksClient
	studentsClient  StudentsClient
	classesClient   ClassesClient
	borrowsClient   BorrowsClient
	analyticsClient AnalyticsClient
	logsClient      LogsClient
	configClient    ConfigClient
	usersClient     UsersClient
}

// NewClient returns an aggregated client for the staff-facing Kitabu API.
func NewClient(apiAddress string, allowInsecure bool) Client {
	return &client{
		booksClient:     NewBooksClient(apiAddress, allowInsecure),
		studentsClient:  NewStudentsClient(apiAddress, allowInsecure),
		classesClient:   NewClassesClient(apiAddress, allowInsecure),
		borrowsClient:   NewBorrowsClient(apiAddress, allowInsecure),
		analyticsClient: NewAnalyticsClient(apiAddress, allowInsecure),
		logsClient:      NewLogsClient(apiAddress, allowInsecure),
		configClient:    NewConfigClient(apiAddress, allowInsecure),
		usersClient:     NewUsersClient(apiAddress, allowInsecure),
	}
}

func (c *client) Books() BooksClient {
	return c.booksClient
}

func (c *client) Students() StudentsClient {
	return c.studentsClient
}

func (c *client) Classes() ClassesClient {
	return c.classesClient
}

func (c *client) Borrows() BorrowsClient {
	return c.borrowsClient
}

func (c *client) Analytics() AnalyticsClient {
	return c.analyticsClient
}

func (c *client) Logs() LogsClient {
	return c.logsClient
}

func (c *client) Config() ConfigClient {
	return c.configClient
}

func (c *client) Users() UsersClient {
	return c.usersClient
}
