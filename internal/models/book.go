package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Book struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author     string             `bson:"author" json:"author"`
	Title      string             `bson:"title" json:"title"`
	IsBorrowed bool               `bson:"isBorrowed" json:"isBorrowed"`
	BorrowBy   string             `bson:"borrowBy" json:"borrowBy"`
	Img        string             `bson:"img" json:"img"`
	Desc       string             `bson:"desc" json:"desc"`
}

const (
	BookEntity = "book"
)

// Available reports whether the book can be borrowed. The paired fields
// must agree: IsBorrowed is true exactly when BorrowBy holds a card number.
func (b *Book) Available() bool {
	return !b.IsBorrowed && b.BorrowBy == ""
}

// Consistent reports whether the (IsBorrowed, BorrowBy) pair is in one of
// its two legal states.
func (b *Book) Consistent() bool {
	return b.IsBorrowed == (b.BorrowBy != "")
}
