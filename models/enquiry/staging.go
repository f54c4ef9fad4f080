package enquiry

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// StagedFile is a candidate or accepted attachment held in memory before
// submission.
type StagedFile struct {
	Filename string
	MIMEType string
	Size     int64
	Content  []byte
}

// RejectionReason distinguishes why a candidate file was refused.
type RejectionReason int

const (
	RejectedType RejectionReason = iota
	RejectedSize
)

// Rejection reports a refused candidate. Message is suitable for direct
// display to the user.
type Rejection struct {
	Filename string
	Reason   RejectionReason
	Message  string
}

// StagePolicy is the admission predicate for attachment staging: accepted MIME
// types, per-file size ceiling, and file-count capacity.
type StagePolicy struct {
	MaxFiles     int
	MaxFileBytes int64
	AcceptedMIME []string
}

func (p StagePolicy) accepts(mime string) bool {
	for _, m := range p.AcceptedMIME {
		if m == mime {
			return true
		}
	}
	return false
}

// Stage is an ordered, capacity-bounded collection of staged attachments.
// Candidates are admitted per the policy; rejected candidates are reported
// rather than raised, so a batch can partially succeed.
type Stage struct {
	policy StagePolicy
	files  []StagedFile
}

// NewStage returns an empty stage governed by the given policy.
func NewStage(policy StagePolicy) *Stage {
	return &Stage{policy: policy}
}

// Add offers candidates in order. Each is accepted only if the stage is below
// capacity, its MIME type is accepted, and its size is within the limit.
// Reaching capacity stops the batch without producing a rejection; type and
// size refusals are reported per file and do not block later candidates.
func (s *Stage) Add(candidates ...StagedFile) []Rejection {
	var rejections []Rejection

	for _, candidate := range candidates {
		if len(s.files) >= s.policy.MaxFiles {
			break
		}

		mime := candidate.MIMEType
		if mime == "" {
			// Browsers supply a declared type; programmatic callers may not.
			mime = mimetype.Detect(candidate.Content).String()
		}

		if !s.policy.accepts(mime) {
			rejections = append(rejections, Rejection{
				Filename: candidate.Filename,
				Reason:   RejectedType,
				Message:  fmt.Sprintf("%s: File type not accepted. Use PDF, JPG, PNG, or Word.", candidate.Filename),
			})
			continue
		}

		if candidate.Size > s.policy.MaxFileBytes {
			rejections = append(rejections, Rejection{
				Filename: candidate.Filename,
				Reason:   RejectedSize,
				Message:  fmt.Sprintf("%s: File too large. Maximum 5MB per file.", candidate.Filename),
			})
			continue
		}

		candidate.MIMEType = mime
		s.files = append(s.files, candidate)
	}

	return rejections
}

// Remove drops exactly the file at index, preserving the order of the rest.
// It reports whether the index was valid.
func (s *Stage) Remove(index int) bool {
	if index < 0 || index >= len(s.files) {
		return false
	}
	s.files = append(s.files[:index], s.files[index+1:]...)
	return true
}

// Files returns the staged files in insertion order.
func (s *Stage) Files() []StagedFile {
	out := make([]StagedFile, len(s.files))
	copy(out, s.files)
	return out
}

// Count returns the number of staged files.
func (s *Stage) Count() int {
	return len(s.files)
}

// Full reports whether the stage has reached capacity.
func (s *Stage) Full() bool {
	return len(s.files) >= s.policy.MaxFiles
}

// Clear removes all staged files.
func (s *Stage) Clear() {
	s.files = nil
}
