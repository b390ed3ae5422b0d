package repositories

import (
	"context"
	"fmt"

	"github.com/DANGPP/btlthayPhong-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type workspaceDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	OwnerID     string             `bson:"ownerId"`
	Members     []memberDocument   `bson:"members"`
	CreatedTime string             `bson:"createdTime"`
}

type memberDocument struct {
	UserID   string `bson:"userId"`
	Username string `bson:"username"`
	Role     string `bson:"role"`
}

func (d workspaceDocument) toWorkspace() models.Workspace {
	members := make([]models.Member, 0, len(d.Members))
	for _, m := range d.Members {
		members = append(members, models.Member{
			UserID:   m.UserID,
			Username: m.Username,
			Role:     models.ParseRole(m.Role),
		})
	}
	return models.Workspace{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		OwnerID:     d.OwnerID,
		Members:     members,
		CreatedTime: d.CreatedTime,
	}
}

type WorkspaceRepository struct {
	workspaces  *mongo.Collection
	invitations *mongo.Collection
}

func NewWorkspaceRepository(db *mongo.Database) *WorkspaceRepository {
	return &WorkspaceRepository{
		workspaces:  db.Collection("workspaces"),
		invitations: db.Collection("invitations"),
	}
}

func (r *WorkspaceRepository) Create(ctx context.Context, workspace models.Workspace) (models.Workspace, error) {
	members := make([]bson.M, 0, len(workspace.Members))
	for _, m := range workspace.Members {
		members = append(members, bson.M{"userId": m.UserID, "username": m.Username, "role": string(m.Role)})
	}
	result, err := r.workspaces.InsertOne(ctx, bson.M{
		"name":        workspace.Name,
		"description": workspace.Description,
		"ownerId":     workspace.OwnerID,
		"members":     members,
		"createdTime": workspace.CreatedTime,
	})
	if err != nil {
		return models.Workspace{}, fmt.Errorf("failed to create workspace: %v", err)
	}
	workspace.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return workspace, nil
}

func (r *WorkspaceRepository) GetByID(ctx context.Context, id string) (models.Workspace, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Workspace{}, fmt.Errorf("invalid workspace ID format: %v", err)
	}
	var doc workspaceDocument
	if err := r.workspaces.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return models.Workspace{}, fmt.Errorf("workspace not found: %v", err)
	}
	return doc.toWorkspace(), nil
}

func (r *WorkspaceRepository) AddMember(ctx context.Context, workspaceID string, member models.Member) error {
	objectID, err := primitive.ObjectIDFromHex(workspaceID)
	if err != nil {
		return fmt.Errorf("invalid workspace ID format: %v", err)
	}
	update := bson.M{"$push": bson.M{"members": bson.M{
		"userId":   member.UserID,
		"username": member.Username,
		"role":     string(member.Role),
	}}}
	result, err := r.workspaces.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to add member to workspace: %v", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("workspace not found")
	}
	return nil
}

func (r *WorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(workspaceID)
	if err != nil {
		return fmt.Errorf("invalid workspace ID format: %v", err)
	}
	update := bson.M{"$pull": bson.M{"members": bson.M{"userId": userID}}}
	if _, err := r.workspaces.UpdateOne(ctx, bson.M{"_id": objectID}, update); err != nil {
		return fmt.Errorf("failed to remove member from workspace: %v", err)
	}
	return nil
}

func (r *WorkspaceRepository) CreateInvitation(ctx context.Context, invitation models.Invitation) (models.Invitation, error) {
	_, err := r.invitations.InsertOne(ctx, bson.M{
		"_id":         invitation.ID,
		"workspaceId": invitation.WorkspaceID,
		"inviterId":   invitation.InviterID,
		"inviteeId":   invitation.InviteeID,
		"role":        string(invitation.Role),
		"status":      string(invitation.Status),
		"createdTime": invitation.CreatedTime,
	})
	if err != nil {
		return models.Invitation{}, fmt.Errorf("failed to create invitation: %v", err)
	}
	return invitation, nil
}

func (r *WorkspaceRepository) GetInvitation(ctx context.Context, id string) (models.Invitation, error) {
	var doc struct {
		ID          string `bson:"_id"`
		WorkspaceID string `bson:"workspaceId"`
		InviterID   string `bson:"inviterId"`
		InviteeID   string `bson:"inviteeId"`
		Role        string `bson:"role"`
		Status      string `bson:"status"`
		CreatedTime string `bson:"createdTime"`
	}
	if err := r.invitations.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return models.Invitation{}, fmt.Errorf("invitation not found: %v", err)
	}
	return models.Invitation{
		ID:          doc.ID,
		WorkspaceID: doc.WorkspaceID,
		InviterID:   doc.InviterID,
		InviteeID:   doc.InviteeID,
		Role:        models.ParseRole(doc.Role),
		Status:      models.InvitationStatus(doc.Status),
		CreatedTime: doc.CreatedTime,
	}, nil
}

func (r *WorkspaceRepository) UpdateInvitationStatus(ctx context.Context, id string, status models.InvitationStatus) error {
	result, err := r.invitations.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("failed to update invitation: %v", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("invitation not found for update")
	}
	return nil
}
