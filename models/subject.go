package models

type Subject struct {
	ID      string `bson:"id" json:"id"`
	UserID  string `bson:"userId" json:"userId"`
	Name    string `bson:"name" json:"name"`
	Deleted bool   `bson:"deleted" json:"-"`
}
