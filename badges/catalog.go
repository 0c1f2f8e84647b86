// Package badges holds the static badge catalog and the pure resolution
// logic that maps a user's streak and stats onto earned badges.
package badges

// StreakBadge is one tier of the streak ladder. MinStreak is the inclusive
// number of streak days needed to hold the tier.
type StreakBadge struct {
	MinStreak   int    `json:"minStreak"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Snapshot is the narrow read-only view of a user's stats that special
// badge predicates are allowed to see.
type Snapshot struct {
	Streak        int
	ChallengeWins int
	LoginStreak   int
	Posts         int
	Reactions     int
	TotalSteps    int
}

// SpecialBadge is an achievement unlocked by a predicate over a Snapshot,
// independent of the streak ladder.
type SpecialBadge struct {
	Name        string              `json:"name"`
	Emoji       string              `json:"emoji"`
	Description string              `json:"description"`
	Predicate   func(Snapshot) bool `json:"-"`
}

// StreakLadder is sorted ascending by MinStreak; thresholds are unique and
// the first entry is 0 so every streak value maps to a tier.
var StreakLadder = []StreakBadge{
	{MinStreak: 0, Name: "The Ant", Icon: "ant.png", Description: "Every journey starts with a single scan."},
	{MinStreak: 5, Name: "The Beetle", Icon: "beetle.png", Description: "Five days on the grind."},
	{MinStreak: 10, Name: "The Spider", Icon: "spider.png", Description: "Ten days of weaving the habit."},
	{MinStreak: 20, Name: "The Scorpion", Icon: "scorpion.png", Description: "Twenty days with a sting."},
	{MinStreak: 35, Name: "The Wolf", Icon: "wolf.png", Description: "Over a month of running with the pack."},
	{MinStreak: 50, Name: "The Panther", Icon: "panther.png", Description: "Fifty days of silent consistency."},
	{MinStreak: 75, Name: "The Tiger", Icon: "tiger.png", Description: "Seventy-five days of raw discipline."},
	{MinStreak: 100, Name: "The Lion", Icon: "lion.png", Description: "One hundred days. King of the gym floor."},
	{MinStreak: 180, Name: "The Gorilla", Icon: "gorilla.png", Description: "Half a year of showing up."},
	{MinStreak: 365, Name: "The Dragon", Icon: "dragon.png", Description: "A full year. Legend status."},
}

// SpecialCatalog lists the achievement badges. Predicates are pure; order
// of evaluation does not matter because each predicate is independent.
var SpecialCatalog = []SpecialBadge{
	{
		Name:        "Challenger",
		Emoji:       "⚔️",
		Description: "Win your first challenge.",
		Predicate:   func(s Snapshot) bool { return s.ChallengeWins >= 1 },
	},
	{
		Name:        "Conqueror",
		Emoji:       "🏆",
		Description: "Win five challenges.",
		Predicate:   func(s Snapshot) bool { return s.ChallengeWins >= 5 },
	},
	{
		Name:        "Early Bird",
		Emoji:       "🌅",
		Description: "Log in seven days in a row.",
		Predicate:   func(s Snapshot) bool { return s.LoginStreak >= 7 },
	},
	{
		Name:        "Storyteller",
		Emoji:       "📝",
		Description: "Share ten posts with the community.",
		Predicate:   func(s Snapshot) bool { return s.Posts >= 10 },
	},
	{
		Name:        "Crowd Favourite",
		Emoji:       "❤️",
		Description: "Collect fifty reactions on your posts.",
		Predicate:   func(s Snapshot) bool { return s.Reactions >= 50 },
	},
	{
		Name:        "Marathoner",
		Emoji:       "👟",
		Description: "Walk one million steps in total.",
		Predicate:   func(s Snapshot) bool { return s.TotalSteps >= 1_000_000 },
	},
	{
		Name:        "Iron Month",
		Emoji:       "🔥",
		Description: "Hold a thirty day check-in streak.",
		Predicate:   func(s Snapshot) bool { return s.Streak >= 30 },
	},
}
