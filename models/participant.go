package models

// Participant is one entrant in a tournament. The registration workflow owns
// its lifecycle; the engine only ever reads it.
type Participant struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournament_id"`
	DisplayName  string `json:"display_name"`
	Active       bool   `json:"active"`
	ByeReceived  bool   `json:"bye_received"`
	Seed         *int   `json:"seed,omitempty"`
}
