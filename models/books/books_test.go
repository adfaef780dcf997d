package books

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"github.com/supakorn-kn/book-catalog/errors"
	"github.com/supakorn-kn/book-catalog/objects"
)

type RegistryTestSuite struct {
	suite.Suite
	registry     *Registry
	insertedBook objects.Book
}

func (s *RegistryTestSuite) SetupTest() {

	s.registry = NewRegistry()

	book, err := s.registry.Create(fakeBookInput())
	s.Require().NoError(err, "Setup test failed from creating book")

	s.insertedBook = book
}

func (s *RegistryTestSuite) TestValidate() {

	s.Run("Should accept non-blank title and author", func() {

		s.Require().NoError(Validate(fakeBookInput()))
	})

	s.Run("Should reject blank title before looking at author", func() {

		for _, title := range []string{"", "  ", "\t\n"} {

			err := Validate(objects.BookInput{Title: title, Author: ""})
			s.Require().True(errors.TitleInvalidError.IsEqual(err), "title %q should be rejected first", title)
			s.Require().Equal("Title is required and must be a non-empty string.", err.Error())
		}
	})

	s.Run("Should reject blank author", func() {

		for _, author := range []string{"", "   "} {

			err := Validate(objects.BookInput{Title: "X", Author: author})
			s.Require().True(errors.AuthorInvalidError.IsEqual(err), "author %q should be rejected", author)
			s.Require().Equal("Author is required and must be a non-empty string.", err.Error())
		}
	})

	s.Run("Should not cap length or reject punctuation", func() {

		input := objects.BookInput{Title: gofakeit.LetterN(5000), Author: "!?*"}
		s.Require().NoError(Validate(input))
	})
}

func (s *RegistryTestSuite) TestCreate() {

	s.Run("Should assign increasing ids and trim fields", func() {

		book, err := s.registry.Create(objects.BookInput{Title: " A ", Author: " B "})
		s.Require().NoError(err)
		s.Require().Greater(book.ID, s.insertedBook.ID)
		s.Require().Equal("A", book.Title)
		s.Require().Equal("B", book.Author)

		found, ok := s.registry.FindByID(book.ID)
		s.Require().True(ok)
		s.Require().Equal(book, found)
	})

	s.Run("Should not store invalid book", func() {

		before := s.registry.List()

		_, err := s.registry.Create(objects.BookInput{Title: "", Author: "X"})
		s.Require().True(errors.IsValidationError(err))

		_, err = s.registry.Create(objects.BookInput{Title: "  ", Author: "X"})
		s.Require().True(errors.TitleInvalidError.IsEqual(err))

		_, err = s.registry.Create(objects.BookInput{Title: "X", Author: ""})
		s.Require().True(errors.AuthorInvalidError.IsEqual(err))

		s.Require().Equal(before, s.registry.List())
	})

	s.Run("Should not consume an id on failed create", func() {

		last := s.registry.List()
		lastID := last[len(last)-1].ID

		_, err := s.registry.Create(objects.BookInput{})
		s.Require().Error(err)

		book, err := s.registry.Create(fakeBookInput())
		s.Require().NoError(err)
		s.Require().Equal(lastID+1, book.ID)
	})
}

func (s *RegistryTestSuite) TestList() {

	s.Run("Should return books in insertion order", func() {

		second, err := s.registry.Create(fakeBookInput())
		s.Require().NoError(err)

		third, err := s.registry.Create(fakeBookInput())
		s.Require().NoError(err)

		s.Require().Equal([]objects.Book{s.insertedBook, second, third}, s.registry.List())
	})

	s.Run("Should not expose stored books to mutation", func() {

		listed := s.registry.List()
		listed[0].Title = "changed"

		found, ok := s.registry.FindByID(s.insertedBook.ID)
		s.Require().True(ok)
		s.Require().Equal(s.insertedBook, found)
	})

	s.Run("Should return empty non-nil list for empty registry", func() {

		books := NewRegistry().List()
		s.Require().NotNil(books)
		s.Require().Empty(books)
	})
}

func (s *RegistryTestSuite) TestFindByID() {

	s.Run("Should get the book by id properly", func() {

		actual, ok := s.registry.FindByID(s.insertedBook.ID)
		s.Require().True(ok)
		s.Require().Equal(s.insertedBook, actual)
	})

	s.Run("Should signal not found for unknown id", func() {

		actual, ok := s.registry.FindByID(s.insertedBook.ID + 100)
		s.Require().False(ok)
		s.Require().Empty(actual)
	})
}

func (s *RegistryTestSuite) TestUpdate() {

	s.Run("Should update exist book in place", func() {

		second, err := s.registry.Create(fakeBookInput())
		s.Require().NoError(err)

		updated, err := s.registry.Update(s.insertedBook.ID, objects.BookInput{Title: "  New title ", Author: "New author"})
		s.Require().NoError(err)
		s.Require().Equal(objects.Book{ID: s.insertedBook.ID, Title: "New title", Author: "New author"}, updated)

		s.Require().Equal([]objects.Book{updated, second}, s.registry.List())
	})

	s.Run("Should throw not found before validating", func() {

		before := s.registry.List()

		_, err := s.registry.Update(s.insertedBook.ID+100, objects.BookInput{})
		s.Require().True(errors.IsNotFoundError(err))
		s.Require().Equal("Book not found", err.Error())

		s.Require().Equal(before, s.registry.List())
	})

	s.Run("Should throw validation error and keep book", func() {

		before, ok := s.registry.FindByID(s.insertedBook.ID)
		s.Require().True(ok)

		_, err := s.registry.Update(s.insertedBook.ID, objects.BookInput{Title: "Kept", Author: " "})
		s.Require().True(errors.AuthorInvalidError.IsEqual(err))

		actual, ok := s.registry.FindByID(s.insertedBook.ID)
		s.Require().True(ok)
		s.Require().Equal(before, actual)
	})
}

func (s *RegistryTestSuite) TestDelete() {

	s.Run("Should delete exist book properly", func() {

		removed, err := s.registry.Delete(s.insertedBook.ID)
		s.Require().NoError(err)
		s.Require().Equal(s.insertedBook, removed)

		_, ok := s.registry.FindByID(s.insertedBook.ID)
		s.Require().False(ok)
		s.Require().Zero(s.registry.Count())
	})

	s.Run("Should throw error when delete non-exist book", func() {

		_, err := s.registry.Delete(s.insertedBook.ID)
		s.Require().True(errors.IsNotFoundError(err))
	})

	s.Run("Should never reuse deleted id", func() {

		book, err := s.registry.Create(fakeBookInput())
		s.Require().NoError(err)
		s.Require().NotEqual(s.insertedBook.ID, book.ID)
		s.Require().Greater(book.ID, s.insertedBook.ID)
	})
}

func (s *RegistryTestSuite) TestScenario() {

	registry := NewRegistry()

	dune, err := registry.Create(objects.BookInput{Title: "Dune", Author: "Herbert"})
	s.Require().NoError(err)
	s.Require().Equal(1, dune.ID)

	foundation, err := registry.Create(objects.BookInput{Title: "Foundation", Author: "Asimov"})
	s.Require().NoError(err)
	s.Require().Equal(2, foundation.ID)

	_, err = registry.Delete(dune.ID)
	s.Require().NoError(err)

	neuromancer, err := registry.Create(objects.BookInput{Title: "Neuromancer", Author: "Gibson"})
	s.Require().NoError(err)
	s.Require().Equal(3, neuromancer.ID)

	s.Require().Equal([]objects.Book{
		{ID: 2, Title: "Foundation", Author: "Asimov"},
		{ID: 3, Title: "Neuromancer", Author: "Gibson"},
	}, registry.List())
}

func TestRegistry(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func fakeBookInput() objects.BookInput {

	fakeInfo := gofakeit.Book()

	return objects.BookInput{
		Title:  fmt.Sprintf(" %s ", fakeInfo.Title),
		Author: fakeInfo.Author,
	}
}
