package model

import (
	"strings"

	"cloud.google.com/go/firestore"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleOwner    Role = "OWNER"
)

// RoleFromString translates a wire role value. Unrecognized values fall back
// to customer rather than failing.
func RoleFromString(s string) Role {
	if strings.ToUpper(strings.TrimSpace(s)) == string(RoleOwner) {
		return RoleOwner
	}
	return RoleCustomer
}

type User struct {
	UID           string `json:"uid"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Gcash         string `json:"gcash"`
	Role          Role   `json:"role"`
	ContactNumber string `json:"contactNumber"`
	ShopName      string `json:"shopName"`
	ShopLocation  string `json:"shopLocation"`
}

// UserFromDoc maps a raw users document. Older documents carry the role under
// "userType"; both spellings are accepted.
func UserFromDoc(doc *firestore.DocumentSnapshot) User {
	return userFromData(doc.Ref.ID, doc.Data())
}

func userFromData(uid string, data map[string]interface{}) User {
	u := User{
		UID:           uid,
		Name:          asString(data["name"]),
		Email:         asString(data["email"]),
		Gcash:         asString(data["gcash"]),
		ContactNumber: asString(data["contactNumber"]),
		ShopName:      asString(data["shopName"]),
		ShopLocation:  asString(data["shopLocation"]),
	}
	roleStr := asString(data["role"])
	if roleStr == "" {
		roleStr = asString(data["userType"])
	}
	u.Role = RoleFromString(roleStr)
	return u
}
