package ai

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestParseQuestionsStrict(t *testing.T) {
	is := is.New(t)

	qs, err := ParseQuestions(`["What drives the narrator?", "Who is the island for?"]`)
	is.NoErr(err)
	is.Equal(len(qs), 2)
	is.Equal(qs[0], "What drives the narrator?")
}

func TestParseQuestionsWrappedInProse(t *testing.T) {
	is := is.New(t)

	qs, err := ParseQuestions(`Here are your questions:

["One?", "Two?", "Three?"]

Enjoy the discussion!`)
	is.NoErr(err)
	is.Equal(len(qs), 3)
}

func TestParseQuestionsCodeFence(t *testing.T) {
	is := is.New(t)

	qs, err := ParseQuestions("```json\n[\"Fenced?\"]\n```")
	is.NoErr(err)
	is.Equal(qs, []string{"Fenced?"})
}

func TestParseQuestionsNoArray(t *testing.T) {
	is := is.New(t)

	_, err := ParseQuestions("I am sorry, I cannot help with that.")
	is.True(errors.Is(err, ErrNoQuestions))
}

func TestParseQuestionsMalformedArray(t *testing.T) {
	is := is.New(t)

	_, err := ParseQuestions(`["unterminated]`)
	is.True(errors.Is(err, ErrNoQuestions))
}
