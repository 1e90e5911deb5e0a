package repository

import "time"

// Evidence types mirror the categories the scorer weighs. The frame pipeline
// produces device and multiple_people rows; audio, ai and tab_switch arrive
// from other services through the evidence API.
const (
	EvidenceDevice         = "device"
	EvidenceMultiplePeople = "multiple_people"
	EvidenceAudio          = "audio"
	EvidenceAI             = "ai"
	EvidenceTabSwitch      = "tab_switch"
)

// KnownEvidenceType reports whether t is one of the scored categories.
func KnownEvidenceType(t string) bool {
	switch t {
	case EvidenceDevice, EvidenceMultiplePeople, EvidenceAudio, EvidenceAI, EvidenceTabSwitch:
		return true
	}
	return false
}

// StudentSession is one proctored exam attempt. EndTime is nil while the
// session is active; CheatingScore is set together with EndTime when the
// session closes.
type StudentSession struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	StudentID     string     `gorm:"column:student_id;size:64;index" json:"student_id"`
	AssignmentID  string     `gorm:"column:assignment_id;size:64" json:"assignment_id"`
	StartTime     time.Time  `gorm:"column:start_time" json:"start_time"`
	EndTime       *time.Time `gorm:"column:end_time" json:"end_time,omitempty"`
	CheatingScore *int       `gorm:"column:cheating_score" json:"cheating_score,omitempty"`
	IsLive        bool       `gorm:"column:is_live;default:false" json:"is_live"`
}

// TableName overrides the default table name.
func (StudentSession) TableName() string {
	return "student_sessions"
}

// Active reports whether the session is still running.
func (s *StudentSession) Active() bool {
	return s.EndTime == nil
}

// CheatingEvidence is one stored violation record. Rows are only ever
// created and counted; nothing mutates or deletes them.
type CheatingEvidence struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"column:session_id;index" json:"session_id"`
	Type      string    `gorm:"column:type;size:20" json:"type"`
	FileName  string    `gorm:"column:file_name;size:128" json:"file_name"`
	Blob      []byte    `gorm:"column:evidence_blob" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name.
func (CheatingEvidence) TableName() string {
	return "cheating_evidence"
}
