package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenres_DeclarationOrder(t *testing.T) {
	var got []Genre
	for _, g := range Genres() {
		got = append(got, g.Genre)
	}

	assert.Equal(t, []Genre{GenreAction, GenreComedy, GenreDrama, GenreSciFi, GenreRomance, GenreFantasy}, got)
}

func TestGenres_ReturnsCopy(t *testing.T) {
	genres := Genres()
	genres[0].DisplayName = "changed"

	assert.Equal(t, "액션", Genres()[0].DisplayName)
}

func TestLookupGenre_CatalogIDs(t *testing.T) {
	want := map[Genre]int{
		GenreAction:  28,
		GenreComedy:  35,
		GenreDrama:   18,
		GenreSciFi:   878,
		GenreRomance: 10749,
		GenreFantasy: 14,
	}
	for genre, id := range want {
		info, ok := LookupGenre(genre)
		assert.True(t, ok)
		assert.Equal(t, id, info.CatalogID, "catalog id of %s", genre)
		assert.NotEmpty(t, info.Reason)
	}

	_, ok := LookupGenre("western")
	assert.False(t, ok)
}

func TestDefaultQuestionBank_Integrity(t *testing.T) {
	bank := DefaultQuestionBank()
	assert.Len(t, bank, 5)

	for i, q := range bank {
		assert.NotEmpty(t, q.Prompt)
		seen := map[string]bool{}
		for _, o := range q.Options {
			assert.False(t, seen[o.Label], "duplicate label %q in question %d", o.Label, i+1)
			seen[o.Label] = true

			_, ok := LookupGenre(o.Genre)
			assert.True(t, ok, "question %d option %q maps to unknown genre %s", i+1, o.Label, o.Genre)
		}
	}
}

func TestQuestion_GenreFor(t *testing.T) {
	q := DefaultQuestionBank()[2]

	genre, ok := q.GenreFor("마법과 신비한 세계를 좋아한다")
	assert.True(t, ok)
	assert.Equal(t, GenreFantasy, genre)

	_, ok = q.GenreFor("통쾌한 액션")
	assert.False(t, ok)

	assert.Equal(t, []string{
		"미래 기술과 우주가 궁금하다",
		"마법과 신비한 세계를 좋아한다",
		"현실적인 이야기가 더 좋다",
		"일상의 소소한 재미가 좋다",
	}, q.Labels())
}
