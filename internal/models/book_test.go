package models_test

import (
	"testing"

	"github.com/vinhyan/midland-library/internal/models"
)

func TestBookConsistent(t *testing.T) {
	tests := []struct {
		name       string
		book       models.Book
		consistent bool
	}{
		{"available book", models.Book{IsBorrowed: false, BorrowBy: ""}, true},
		{"borrowed book", models.Book{IsBorrowed: true, BorrowBy: "0000"}, true},
		{"flag set without borrower", models.Book{IsBorrowed: true, BorrowBy: ""}, false},
		{"borrower set without flag", models.Book{IsBorrowed: false, BorrowBy: "0000"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.book.Consistent(); got != tt.consistent {
				t.Errorf("Consistent() = %v, want %v", got, tt.consistent)
			}
		})
	}
}

func TestBookAvailable(t *testing.T) {
	tests := []struct {
		name      string
		book      models.Book
		available bool
	}{
		{"fresh book", models.Book{}, true},
		{"borrowed book", models.Book{IsBorrowed: true, BorrowBy: "1234"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.book.Available(); got != tt.available {
				t.Errorf("Available() = %v, want %v", got, tt.available)
			}
		})
	}
}
