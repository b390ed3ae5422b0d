package models

import "strings"

type WorkspaceRole string

const (
	RoleAdmin  WorkspaceRole = "admin"
	RoleEditor WorkspaceRole = "editor"
	RoleViewer WorkspaceRole = "viewer"
)

// ParseRole falls back to the least privileged role on an unrecognized code.
func ParseRole(code string) WorkspaceRole {
	r := WorkspaceRole(strings.TrimSpace(code))
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return r
	default:
		return RoleViewer
	}
}

// Every member can view; admins and editors can create, edit and delete tasks;
// only admins manage membership.
func (r WorkspaceRole) CanView() bool {
	return true
}

func (r WorkspaceRole) CanCreateTasks() bool {
	return r == RoleAdmin || r == RoleEditor
}

func (r WorkspaceRole) CanEditTasks() bool {
	return r == RoleAdmin || r == RoleEditor
}

func (r WorkspaceRole) CanDeleteTasks() bool {
	return r == RoleAdmin || r == RoleEditor
}

func (r WorkspaceRole) CanManageMembers() bool {
	return r == RoleAdmin
}

type Member struct {
	UserID   string        `json:"userId" bson:"userId"`
	Username string        `json:"username" bson:"username"`
	Role     WorkspaceRole `json:"role" bson:"role"`
}

type Workspace struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	OwnerID     string   `json:"ownerId" bson:"ownerId"`
	Members     []Member `json:"members" bson:"members"`
	CreatedTime string   `json:"createdTime" bson:"createdTime"`
}

// MemberRole returns the role of the given user inside the workspace and
// whether they are a member at all.
func (w Workspace) MemberRole(userID string) (WorkspaceRole, bool) {
	for _, m := range w.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

type Invitation struct {
	ID          string           `json:"id" bson:"_id,omitempty"`
	WorkspaceID string           `json:"workspaceId" bson:"workspaceId"`
	InviterID   string           `json:"inviterId" bson:"inviterId"`
	InviteeID   string           `json:"inviteeId" bson:"inviteeId"`
	Role        WorkspaceRole    `json:"role" bson:"role"`
	Status      InvitationStatus `json:"status" bson:"status"`
	CreatedTime string           `json:"createdTime" bson:"createdTime"`
}
