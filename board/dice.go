package board

var (
	// ClassicDice are the sixteen dice of a 4x4 game. Each string lists the
	// six faces; the Q face reads "Qu".
	ClassicDice []string
	// BigDice are the twenty-five dice of a 5x5 game.
	BigDice []string
)

// letterWeights are rough English letter frequencies, per ten thousand,
// used when there is no dice set for a board size.
var letterWeights = [26]int{
	817, 149, 278, 425, 1270, 223, 202, 609, 697, 15, 77, 403, 241,
	675, 751, 193, 10, 599, 633, 906, 276, 98, 236, 15, 197, 7,
}

func init() {
	ClassicDice = []string{
		"AAEEGN", "ABBJOO", "ACHOPS", "AFFKPS",
		"AOOTTW", "CIMOTU", "DEILRX", "DELRVY",
		"DISTTY", "EEGHNW", "EEINSU", "EHRTVW",
		"EIOSST", "ELRTTY", "HIMNQU", "HLNNRZ",
	}
	BigDice = []string{
		"AAAFRS", "AAEEEE", "AAFIRS", "ADENNN", "AEEEEM",
		"AEEGMU", "AEGMNN", "AFIRSY", "BJKQXZ", "CCENST",
		"CEIILT", "CEILPT", "CEIPST", "DDHNOT", "DHHLOR",
		"DHLNOR", "DHLNOR", "EIIITT", "EMOTTT", "ENSSSU",
		"FIPRSY", "GORRVW", "IPRRRY", "NOOTUW", "OOOTTU",
	}
}
