package getallauthors

const (
	queryType = "GetAllAuthors"
)

// Query represents the input for listing all authors.
// This query uses an empty struct since it doesn't require any input parameters.
type Query struct{}

// BuildQuery creates a new Query for listing all authors.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
