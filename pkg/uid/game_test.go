package uid

import "testing"

func TestGenerateGameID(t *testing.T) {
	a, b := GenerateGameID(), GenerateGameID()
	if a == b {
		t.Fatalf("two ids collided: %s", a)
	}
	if !IsGameID(a) || IsGameID("not-a-game") {
		t.Errorf("IsGameID does not recognise generated ids")
	}
}
