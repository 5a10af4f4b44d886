package domain

import "fmt"

// AnswerSet holds one selected option label per question, in question order.
type AnswerSet []string

// Tally counts matching answers per genre.
type Tally map[Genre]int

// Recommendation is the outcome of scoring one answer set.
type Recommendation struct {
	Genre  GenreInfo
	Reason string
	Tally  Tally
}

// Scorer maps answer sets to a genre. It holds only read-only tables and is safe for concurrent use.
type Scorer struct {
	bank   QuestionBank
	genres []GenreInfo
}

// NewScorer creates a Scorer over bank and the built-in genre table.
func NewScorer(bank QuestionBank) *Scorer {
	return &Scorer{bank: bank, genres: genreTable}
}

// Bank returns the question bank the scorer evaluates against.
func (s *Scorer) Bank() QuestionBank {
	return s.bank
}

// Tally counts the answers per genre. Every known genre is present, starting at zero.
// Labels that are not options of their question are not counted.
func (s *Scorer) Tally(answers AnswerSet) Tally {
	tally := make(Tally, len(s.genres))
	for _, g := range s.genres {
		tally[g.Genre] = 0
	}
	for i, answer := range answers {
		if i >= len(s.bank) {
			break
		}
		if genre, ok := s.bank[i].GenreFor(answer); ok {
			tally[genre]++
		}
	}
	return tally
}

// Score picks the genre with the highest tally. Ties go to the genre declared first.
func (s *Scorer) Score(answers AnswerSet) Recommendation {
	tally := s.Tally(answers)

	winner := s.genres[0]
	best := tally[winner.Genre]
	for _, g := range s.genres[1:] {
		if tally[g.Genre] > best {
			winner = g
			best = tally[g.Genre]
		}
	}

	return Recommendation{
		Genre:  winner,
		Reason: BuildReason(winner, answers),
		Tally:  tally,
	}
}

// BuildReason cites the first answer of the set, whichever genre it belongs to.
func BuildReason(genre GenreInfo, answers AnswerSet) string {
	base := genre.ReasonTemplate()
	if len(answers) == 0 {
		return base
	}
	return fmt.Sprintf("%s 특히 '%s' 선택이 큰 영향을 줬어요.", base, answers[0])
}
