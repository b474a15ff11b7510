// Package repository provides the read model for admin exports.
package repository

import (
	"context"

	"gorm.io/gorm"
)

// TeamRow is one line of the teams export: the team, its leader and its
// submission if any.
type TeamRow struct {
	TeamName        string `gorm:"column:team_name"`
	Institution     string `gorm:"column:institution"`
	City            string `gorm:"column:city"`
	NumberOfMembers int    `gorm:"column:number_of_members"`
	LeaderName      string `gorm:"column:leader_name"`
	LeaderEmail     string `gorm:"column:leader_email"`
	IdeaTitle       string `gorm:"column:idea_title"`
	IdeaStatus      string `gorm:"column:idea_status"`
	IdeaIsDraft     *bool  `gorm:"column:idea_is_draft"`
}

// Repository defines the interface for export queries.
type Repository interface {
	// ListTeams returns every team with leader and submission info.
	ListTeams(ctx context.Context) ([]TeamRow, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new export repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListTeams returns every team with leader and submission info.
func (r *repository) ListTeams(ctx context.Context) ([]TeamRow, error) {
	var rows []TeamRow
	err := r.db.WithContext(ctx).
		Table("teams").
		Select(`teams.name AS team_name,
			teams.institution,
			teams.city,
			teams.number_of_members,
			users.name AS leader_name,
			users.email AS leader_email,
			project_ideas.title AS idea_title,
			project_ideas.status AS idea_status,
			project_ideas.is_draft AS idea_is_draft`).
		Joins("JOIN users ON users.id = teams.leader_id").
		Joins("LEFT JOIN project_ideas ON project_ideas.team_id = teams.id").
		Order("teams.created_at ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []TeamRow{}
	}

	return rows, nil
}
