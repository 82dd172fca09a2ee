package asset

// Embedded fallback portraits, keyed by mood name
// Used when no portrait file is found under the assets directory

const portraitNeutral = `
   .-"""-.
  /  o o  \
 |    ^    |
 |  '---'  |
  \       /
   '-...-'
`

const portraitDominant = `
   .-"""-.
  /  - o  \
 |    ^    |
 |  \___/  |
  \      ~/
   '-...-'
`

const portraitAgitated = `
   .-"""-.
  / \o o/ \
 |    ^    |
 |  .---.  |
  \  ###  /
   '-...-'
`

// PortraitExt is the file extension of portrait files on disk
const PortraitExt = ".txt"

// PortraitDir is the subdirectory of the assets directory holding portraits
const PortraitDir = "portraits"

// DefaultPortraits maps mood names to embedded art
var DefaultPortraits = map[string]string{
	"neutral":  portraitNeutral,
	"dominant": portraitDominant,
	"agitated": portraitAgitated,
}
