package usecase_room

import (
	"strings"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CodeAndNicknameSuite struct {
	suite.Suite
}

func (s *CodeAndNicknameSuite) TestGenerateCodeShape(t provider.T) {
	t.Parallel()

	for range 200 {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, codeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, c), "unexpected character %q", c)
		}
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
	}
}

func (s *CodeAndNicknameSuite) TestNicknameAvoidsTakenWord(t provider.T) {
	t.Parallel()

	calls := 0
	p := &nicknamePicker{
		words: []string{"Otter", "Falcon"},
		intn: func(n int) int {
			calls++
			return calls % n
		},
	}

	nick := p.pick(map[string]bool{"Otter": true})
	assert.Equal(t, "Falcon", nick)
}

func (s *CodeAndNicknameSuite) TestNicknameFallsBackToSuffix(t provider.T) {
	t.Parallel()

	p := &nicknamePicker{
		words: []string{"Otter"},
		intn:  func(n int) int { return 7 % n },
	}

	nick := p.pick(map[string]bool{"Otter": true})
	assert.True(t, strings.HasPrefix(nick, "Otter-"), nick)
	assert.NotEqual(t, "Otter", nick)
}

func (s *CodeAndNicknameSuite) TestNicknameWithoutCollisions(t provider.T) {
	t.Parallel()

	nick := newNicknamePicker().pick(nil)
	assert.Contains(t, nicknameWords, nick)
}

func TestCodeAndNicknameSuite(t *testing.T) {
	suite.RunSuite(t, new(CodeAndNicknameSuite))
}
