package errors

const (
	TitleInvalidErrorCode     = 200_001
	AuthorInvalidErrorCode    = 200_002
	ObjectIDNotFoundErrorCode = 200_003
)

// TitleInvalidError indicates the book title is missing, not a string or blank
var TitleInvalidError = new(TitleInvalidErrorCode, "TitleInvalid", "Title is required and must be a non-empty string.")

// AuthorInvalidError indicates the book author is missing, not a string or blank
var AuthorInvalidError = new(AuthorInvalidErrorCode, "AuthorInvalid", "Author is required and must be a non-empty string.")

// ObjectIDNotFoundError indicates user gives an ID that no book holds
var ObjectIDNotFoundError = new(ObjectIDNotFoundErrorCode, "ObjectIDNotFound", "Book not found")

func IsValidationError(err error) bool {
	return TitleInvalidError.IsEqual(err) || AuthorInvalidError.IsEqual(err)
}

func IsNotFoundError(err error) bool {
	return ObjectIDNotFoundError.IsEqual(err)
}
