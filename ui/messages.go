package ui

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"omok-local/types"
)

var messages = newCatalog()

var printer = message.NewPrinter(language.English, message.Catalog(messages))

// newCatalog builds the message catalog. Messages are keyed by their
// English text; keys without a Korean entry print as English.
func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	ko := func(key, msg string) {
		if err := b.SetString(language.Korean, key, msg); err != nil {
			panic(fmt.Sprintf("catalog entry %q: %v", key, err))
		}
	}

	ko("O M O K", "오 목")
	ko("Difficulty", "난이도")
	ko("Your colour", "내 돌")
	ko("Computer pause", "컴퓨터 대기")
	ko("Language", "언어")
	ko("Start", "시작")
	ko("Board colour", "판 색상")
	ko("Quit", "종료")
	ko("Restart", "다시 시작")
	ko("Menu", "메뉴")
	ko("Easy", "쉬움")
	ko("Normal", "보통")
	ko("Hard", "어려움")
	ko("Black", "흑")
	ko("White", "백")
	ko("plays often at random", "가끔 아무 곳에나 둡니다")
	ko("balanced", "공격과 수비의 균형")
	ko("attacks and defends hard", "강하게 공격하고 막습니다")
	ko("moves first", "먼저 둡니다")
	ko("moves second", "나중에 둡니다")
	ko("Tab next · ↑↓←→ change · ⏎ start", "Tab 다음 · ↑↓←→ 변경 · ⏎ 시작")

	ko("Game Info", "게임 정보")
	ko("Moves", "수순")
	ko("Level:", "난이도:")
	ko("Move:", "수:")
	ko("You:", "나:")
	ko("Game:", "게임:")
	ko("··· %d earlier", "··· 이전 %d수")
	ko("%s Your move (%s)", "%s 당신의 차례 (%s)")
	ko("◌ Thinking...", "◌ 컴퓨터가 생각 중...")
	ko("Hint: %s", "힌트: %s")
	ko("Difficulty: %s", "난이도: %s")
	ko("That point is taken", "이미 돌이 있는 자리입니다")
	ko("That point is off the board", "판 밖의 자리입니다")
	ko("hjkl/↑↓←→ move  ⏎/click play  ? hint  d level  f focus  q quit", "hjkl/↑↓←→ 이동  ⏎/클릭 착수  ? 힌트  d 난이도  f 집중  q 나가기")
	ko("f to toggle", "f 전환")
	ko("─── Game Complete ───", "─── 게임 종료 ───")
	ko("Result: %s", "결과: %s")
	ko("r restart · q return to menu", "r 다시 시작 · q 메뉴로")

	ko("You win!", "🎉 당신이 이겼습니다!")
	ko("The computer wins!", "😈 컴퓨터가 이겼습니다!")
	ko("Draw. The board is full.", "무승부. 판이 가득 찼습니다.")
	ko("Play again?", "게임을 다시 시작하시겠습니까?")
	ko("Result", "결과")
	ko("Select board colour (Tab: line colour)", "판 색상 선택 (Tab: 선 색상)")
	ko("Select line colour (Tab: board colour)", "선 색상 선택 (Tab: 판 색상)")
	ko("Board preview", "판 미리보기")
	ko("Board: %d  Line: %d", "판: %d  선: %d")
	ko("Could not save colours: %v", "색상을 저장하지 못했습니다: %v")
	return b
}

// SetLanguage switches all user-visible text to lang ("en" or "ko").
func SetLanguage(lang string) {
	printer = newPrinter(lang)
}

func newPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag, message.Catalog(messages))
}

// tr returns the translation of key formatted with args.
func tr(key string, args ...interface{}) string {
	return printer.Sprintf(key, args...)
}

func stoneName(s types.Stone) string {
	return tr(s.String())
}

func difficultyName(d types.Difficulty) string {
	return tr(d.String())
}

// outcomeText describes a finished game from the human's side.
func outcomeText(status types.GameStatus, human types.Stone) string {
	switch {
	case status == types.Draw:
		return tr("Draw. The board is full.")
	case status.Winner() == human:
		return tr("You win!")
	case status.Terminal():
		return tr("The computer wins!")
	}
	return ""
}
