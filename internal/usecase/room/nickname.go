package usecase_room

import (
	"fmt"
	"math/rand/v2"
)

var nicknameWords = []string{
	"Otter", "Falcon", "Badger", "Lynx", "Heron", "Marten", "Panda", "Raven",
	"Gecko", "Bison", "Koala", "Moose", "Ferret", "Puffin", "Walrus", "Ocelot",
	"Tapir", "Wombat", "Jackal", "Magpie", "Narwhal", "Quokka", "Stoat", "Yak",
}

const nicknameAttempts = 20

type nicknamePicker struct {
	words []string
	intn  func(n int) int
}

func newNicknamePicker() *nicknamePicker {
	return &nicknamePicker{
		words: nicknameWords,
		intn:  rand.IntN,
	}
}

// pick returns a word not in taken. After nicknameAttempts collisions it
// falls back to a word with a numeric suffix.
func (p *nicknamePicker) pick(taken map[string]bool) string {
	for range nicknameAttempts {
		word := p.words[p.intn(len(p.words))]
		if !taken[word] {
			return word
		}
	}

	for {
		nick := fmt.Sprintf("%s-%04d", p.words[p.intn(len(p.words))], p.intn(10000))
		if !taken[nick] {
			return nick
		}
	}
}
