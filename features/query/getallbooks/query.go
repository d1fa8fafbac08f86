package getallbooks

const (
	queryType = "GetAllBooks"
)

// Query represents the input for listing all books.
type Query struct{}

// BuildQuery creates a new Query for listing all books.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
