package models

type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Email     string `json:"email" bson:"email"`
	Name      string `json:"name" bson:"name"`
	Password  string `json:"-" bson:"password"`
	UserType  string `json:"userType" bson:"userType"`
	TimeModel `bson:",inline"`
}
