package seeder

// Demo content. Every title, text and answer passes the submission
// validators, and every tag name stays a valid tag once suffixed.

var questionTitles = []string{
	"How do I score from a direct free kick?",
	"What is the best tactic for a fast counter attack?",
	"Which striker has the highest pace this season?",
	"Why does my goalkeeper freeze on penalties?",
	"Best player links for a Premier League squad?",
	"Should full backs be trained for crosses?",
	"How do skill moves actually work?",
	"Who is the best value centre forward?",
	"How many coins does a decent squad cost?",
	"What is the most reliable corner routine?",
	"Which player cards are meta right now?",
	"How can I raise team chemistry quickly?",
}

var questionTexts = []string{
	"I have been playing for a week and still cannot score free kicks consistently. Any advice?",
	"Looking for advice on a 4-2-3-1 setup. How do you all set your instructions?",
	"I heard the French winger is the fastest player in the game. Is that true?",
	"Sometimes the keeper just stands still on a penalty. Is this a bug or my mistake?",
	"I want to build a squad from Premier League players only. Who should I pick first?",
	"Long crosses or low driven passes into the box, which one works better online?",
	"Who is the best attacking midfielder for under one hundred thousand coins?",
	"Which traits should I train first on wing backs to make them useful in attack?",
	"How does dynamic tactics switching work during a match, and is it worth using?",
	"Which chemistry styles give the biggest boost for defenders and midfielders?",
}

var answerTexts = []string{
	"Hold the finesse button and aim for the far corner, it works most of the time.",
	"A 4-3-3 with wide wingers works better if you like to attack down the flanks.",
	"Yes, he and the Brazilian winger are the two fastest players right now.",
	"It is a known bug in the current patch, the next update should fix it.",
	"Right now the strongest picks are the Norwegian striker and the Belgian playmaker.",
	"Do not forget to press right after losing the ball, it wins a lot of games.",
	"Chemistry affects passing and pace, so it is worth investing in it early.",
	"Avoid auto defending, it pulls your centre backs out of position.",
	"On penalties aim just below the crossbar and keep the power bar low.",
	"A near post corner with a tall striker is almost always a goal.",
}

var tagNames = []string{
	"free_kicks", "tactics", "players", "goalkeepers", "premier_league", "ultimate_team",
	"skill_moves", "training", "squad", "meta", "cards", "chemistry", "corners", "penalties",
}
