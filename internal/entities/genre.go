package entities

// GameGenre selects the setting for a campaign or character
type GameGenre string

const (
	GenreFantasy        GameGenre = "Fantasy"
	GenreSciFi          GameGenre = "Sci-Fi"
	GenreCyberpunk      GameGenre = "Cyberpunk"
	GenrePostApocalypse GameGenre = "Post-Apocalyptic"
	GenreEpicWar        GameGenre = "Epic War"
	GenreEldritchHorror GameGenre = "Eldritch Horror"
	GenreSteampunk      GameGenre = "Steampunk"
	GenreWestern        GameGenre = "Western"
)

// Genres lists every playable genre
var Genres = []GameGenre{
	GenreFantasy,
	GenreSciFi,
	GenreCyberpunk,
	GenrePostApocalypse,
	GenreEpicWar,
	GenreEldritchHorror,
	GenreSteampunk,
	GenreWestern,
}

var startMessages = map[GameGenre]string{
	GenreFantasy:        "Welcome to the table. The tavern is warm, but the night is cold. The party gathers... What do you wish to do?",
	GenreSciFi:          "Systems online. You stand on the bridge of the USS Aegis. The warp drive is humming. What are your orders?",
	GenreCyberpunk:      "The neon rain hits the pavement. You're in a safehouse in Sector 4. The corpo hit-squad is searching for you. What's the plan?",
	GenrePostApocalypse: "The dust storm has finally settled. You emerge from the bunker. Supplies are low. How do you survive?",
	GenreEpicWar:        "The war horns sound in the distance. Your platoon is stationed in the trenches. The enemy approaches. Prepare yourselves.",
	GenreEldritchHorror: "A thick fog rolls in. The old mansion looms before you. You feel eyes watching you from the dark. Do you enter?",
	GenreWestern:        "The noon sun beats down on the dusty street. The saloon doors swing open. The sheriff is missing. What's your move, partner?",
	GenreSteampunk:      "The gears of the great airship grind overhead. Steam fills the London streets. A clockwork automaton has gone rogue.",
}

// StartMessage returns the opening narration for a genre,
// falling back to the Fantasy opener for unknown genres
func (g GameGenre) StartMessage() string {
	if msg, ok := startMessages[g]; ok {
		return msg
	}
	return startMessages[GenreFantasy]
}

// InitialLocation returns the starting location name for a genre
func (g GameGenre) InitialLocation() string {
	if g == GenreSciFi {
		return "Orbit Station Alpha"
	}
	return "The Prancing Pony"
}

// Valid reports whether the genre is one of the known settings
func (g GameGenre) Valid() bool {
	_, ok := startMessages[g]
	return ok
}
