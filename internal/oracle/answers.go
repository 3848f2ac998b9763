package oracle

// Answers is the default pool the stars answer from.
var Answers = []string{
	"The stars align in your favor.",
	"Patience is your strongest ally.",
	"The outcome is uncertain, look within.",
	"A glorious yes resonates through the cosmos.",
	"Wait for the next new moon.",
	"You already know the answer.",
	"The path is clear, walk it with courage.",
	"Let go of what you cannot control.",
	"Seek counsel from an old friend.",
	"Fortune favors the bold.",
	"Not now, the energies are chaotic.",
	"Trust your intuition, it is guiding you true.",
	"Abundance is coming your way.",
	"Reconsider your approach.",
	"The universe says: Absolutely.",
	"Focus on the present moment.",
	"A surprise awaits you.",
	"This is a turning point in your destiny.",
	"Silence will bring clarity.",
	"Do not hesitate.",
}
