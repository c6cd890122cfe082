package entities

import "time"

const (
	RelationshipSelf   = "Self"
	RelationshipMember = "Member"
)

// Family groups citizens under a head. The head is always a member with
// relationship Self.
type Family struct {
	ID            uint           `json:"family_id"`
	HeadCitizenID uint           `json:"head_citizen_id"`
	HeadUsername  string         `json:"head_username"`
	CreatedAt     time.Time      `json:"created_at"`
	Members       []FamilyMember `json:"members"`
}

// FamilyMember is one row of the membership relation.
type FamilyMember struct {
	ID              uint   `json:"id"`
	FamilyID        uint   `json:"family_id"`
	HeadCitizenID   uint   `json:"head_citizen_id"`
	MemberCitizenID uint   `json:"member_citizen_id"`
	Username        string `json:"username"`
	Relationship    string `json:"relationship"`
}

// CreateFamilyInput names the citizen who heads the new family.
type CreateFamilyInput struct {
	HeadUsername string `json:"User_name" binding:"required"`
}

// AddFamilyMemberInput names the citizen to add and their relationship to the head.
type AddFamilyMemberInput struct {
	Username     string `json:"User_name" binding:"required"`
	Relationship string `json:"Relationship" binding:"max=30"`
}
