package flappy

// gameOverCaptions are shown at random when a session ends.
var gameOverCaptions = []string{
	"You've used up a life!",
	"Paw-sitively purrished.",
	"Fur-midable effort... but not enough.",
	"That was a cat-astrophe!",
	"Game over... fur now.",
	"You're meowt",
}
