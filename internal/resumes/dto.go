package resumes

// ResumeResponse is the outward-facing representation: the stored document
// plus the derived completion score, which is never persisted.
type ResumeResponse struct {
	Resume
	Completion int `json:"completion"`
}

func toResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		Resume:     r,
		Completion: CompletionScore(r),
	}
}

func toResponses(items []Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toResponse(r))
	}
	return out
}
