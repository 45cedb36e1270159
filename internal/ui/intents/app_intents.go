package intents

// Quit ends the program.
type Quit struct{}

func (Quit) isIntent() {}

// Refresh reloads the log tree and reports it in the info area.
type Refresh struct{}

func (Refresh) isIntent() {}

// Clear resets all transient state: the info area, the saved-selection
// register, the in-progress chord, and any queued commands.
type Clear struct{}

func (Clear) isIntent() {}

// ShowHelp displays the full command listing.
type ShowHelp struct{}

func (ShowHelp) isIntent() {}

// SetRevset prompts for a new revset expression and reloads with it.
type SetRevset struct{}

func (SetRevset) isIntent() {}

// ToggleIgnoreImmutable flips the --ignore-immutable global flag.
type ToggleIgnoreImmutable struct{}

func (ToggleIgnoreImmutable) isIntent() {}

// SaveSelection stashes the current selection into the one-slot register,
// the first half of a two-step destination-picking command.
type SaveSelection struct{}

func (SaveSelection) isIntent() {}
