package session

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/browser"
)

// DefaultFeedbackPage is opened when the player quits from the game-over screen.
const DefaultFeedbackPage = "index.html"

// OpenFeedback opens a local HTML page in the user's browser.
func OpenFeedback(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve feedback page: %w", err)
	}
	if err := browser.OpenURL("file://" + filepath.ToSlash(abs)); err != nil {
		return fmt.Errorf("open feedback page %s: %w", abs, err)
	}
	return nil
}
