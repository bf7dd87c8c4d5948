package mode

const startText = `CODEBREAKER

A four-peg code is hidden behind the grey row. Find it.

Press 's' to start a round.
Press 'h' for help, 'q' to quit.`

const helpText = `HELP

For a general explanation of the game press 'g'.

CONTROLS
Use Left and Right to move between the four input slots and the submit button.
On a slot use Up and Down to cycle through the colors.
When every slot holds a color the submit button turns green.
Move onto the green button and press Enter to submit the guess.
'r' starts a new round, 'm' toggles sound.

Press Enter to return.`

const generalText = `GENERAL EXPLANATION

The goal of the game is to find the color combination of the secret.
Every submitted combination is a guess and is validated by the computer.
A black pin next to the guess means one color is correct and in the correct position.
A white pin means one color is correct but in the wrong position.
Colors may repeat, in the secret and in your guess.
Use the pins to narrow down the combination before you run out of rows.

Have fun!

Press Enter to return.`

const wonText = `CODE BROKEN

Press 's' for a new round or 'q' to quit.`

const lostText = `OUT OF ATTEMPTS

The secret is revealed above.
Press 's' for a new round or 'q' to quit.`

// Text returns the static page text for p
func (p Page) Text() string {
	switch p {
	case PageHelp:
		return helpText
	case PageGeneral:
		return generalText
	case PageWon:
		return wonText
	case PageLost:
		return lostText
	default:
		return startText
	}
}
