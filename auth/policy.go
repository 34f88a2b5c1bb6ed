package auth

import "github.com/Kariqs/amexan-eats-api/models"

// Allowed reports whether role is one of required. An empty required list
// admits any known role.
func Allowed(role models.Role, required ...models.Role) bool {
	if !role.Valid() {
		return false
	}
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}

// CanManage reports whether the identity may mutate a resource owned by ownerID.
func (i Identity) CanManage(ownerID uint) bool {
	return i.Role == models.RoleAdmin || (i.Role == models.RoleOwner && i.UserID == ownerID)
}

// CanModerate reports whether the identity may remove content written by
// authorID: its author or an admin.
func (i Identity) CanModerate(authorID uint) bool {
	return i.UserID == authorID || i.Role == models.RoleAdmin
}
