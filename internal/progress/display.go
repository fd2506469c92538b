package progress

// levelNames are the display titles for levels 1-10.
var levelNames = []string{
	"Beginner Explorer", "Curious Learner", "Knowledge Seeker",
	"Study Enthusiast", "Learning Champion", "Wisdom Gatherer",
	"Master Student", "Academic Warrior", "Knowledge Sage",
	"Learning Legend",
}

// DisplayLevel clamps the stored level to the presentational floor of 1.
func DisplayLevel(level int) int {
	if level < 1 {
		return 1
	}
	return level
}

// LevelName returns the display title for a level, clamped to the
// catalog bounds.
func LevelName(level int) string {
	level = DisplayLevel(level)
	if level > len(levelNames) {
		level = len(levelNames)
	}
	return levelNames[level-1]
}

// LevelProgress returns how far into the current level the XP total is and
// the XP span of one level.
func (p *UserProgress) LevelProgress() (into, span int) {
	level := DisplayLevel(p.Level)
	into = p.XP
	if level > 1 {
		into = p.XP - (level-1)*XPPerLevel
	}
	return into, XPPerLevel
}
