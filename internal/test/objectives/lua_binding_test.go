package objectives

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/objective"
)

const scenarioTypeName = "scenario"

// Scenario is a Lua-scripted session: setup, a timeline of events, the
// surviving named pieces and the expected settlement.
type Scenario struct {
	Name        string
	LevelID     string
	PlayerColor chess.Color
	Difficulty  chess.Difficulty
	Victory     chess.VictoryCondition

	Events []objective.Event
	Board  map[chess.Color][]string

	ExpectCompleted []string
	ExpectFailed    []string
	ExpectBonus     *int
}

func loadScenarioFromFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerScenarioType(state)
	registerScenarioConstructor(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerScenarioType(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerScenarioConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name, PlayerColor: chess.ColorWhite}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "session", Function: scenarioSession},
	{Name: "board", Function: scenarioSetBoard},
	{Name: "turn", Function: scenarioTurn},
	{Name: "rounds", Function: scenarioRounds},
	{Name: "lose", Function: scenarioLose},
	{Name: "kill", Function: scenarioKill},
	{Name: "convert", Function: scenarioConvert},
	{Name: "courtier_destroyed", Function: scenarioCourtierDestroyed},
	{Name: "item", Function: scenarioItem},
	{Name: "king_at", Function: scenarioKingAt},
	{Name: "disguise", Function: scenarioDisguise},
	{Name: "winning_blow", Function: scenarioWinningBlow},
	{Name: "expect_completed", Function: scenarioExpectCompleted},
	{Name: "expect_failed", Function: scenarioExpectFailed},
	{Name: "expect_bonus", Function: scenarioExpectBonus},
}

func scenarioSession(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	opts := tableToMap(state, 2)
	if v, ok := opts["level"].(string); ok {
		scenario.LevelID = v
	}
	if v, ok := opts["player"].(string); ok {
		scenario.PlayerColor = chess.Color(v)
	}
	if v, ok := opts["difficulty"].(string); ok {
		scenario.Difficulty = chess.Difficulty(v)
	}
	if v, ok := opts["victory"].(string); ok {
		scenario.Victory = chess.VictoryCondition(v)
	}
	return 0
}

func scenarioSetBoard(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	opts := tableToMap(state, 2)
	scenario.Board = map[chess.Color][]string{}
	for color, value := range opts {
		names, ok := value.([]any)
		if !ok {
			lua.Errorf(state, "board entry %s must be a list of piece names", color)
			return 0
		}
		for _, name := range names {
			text, ok := name.(string)
			if !ok {
				lua.Errorf(state, "board entry %s holds a non-string name", color)
				return 0
			}
			scenario.Board[chess.Color(color)] = append(scenario.Board[chess.Color(color)], text)
		}
	}
	return 0
}

func scenarioTurn(state *lua.State) int {
	scenario := checkScenario(state)
	color := lua.CheckString(state, 2)
	scenario.Events = append(scenario.Events, objective.Event{
		Type:  objective.EventTurnAdvance,
		Color: chess.Color(color),
	})
	return 0
}

// rounds advances n full rounds: one turn for each color.
func scenarioRounds(state *lua.State) int {
	scenario := checkScenario(state)
	count := lua.CheckInteger(state, 2)
	other := chess.ColorBlack
	if scenario.PlayerColor == chess.ColorBlack {
		other = chess.ColorWhite
	}
	for i := 0; i < count; i++ {
		scenario.Events = append(scenario.Events,
			objective.Event{Type: objective.EventTurnAdvance, Color: scenario.PlayerColor},
			objective.Event{Type: objective.EventTurnAdvance, Color: other},
		)
	}
	return 0
}

func scenarioLose(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	opts := tableToMap(state, 2)
	piece := chess.Piece{Color: scenario.PlayerColor}
	if v, ok := opts["type"].(string); ok {
		piece.Type = chess.PieceType(v)
	}
	if v, ok := opts["name"].(string); ok {
		piece.Name = v
	}
	scenario.Events = append(scenario.Events, objective.Event{
		Type:  objective.EventPieceLost,
		Piece: &piece,
	})
	return 0
}

func scenarioKill(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	opts := tableToMap(state, 2)
	kill := objective.KillRecord{}
	if v, ok := opts["victim"].(string); ok {
		kill.Victim.Type = chess.PieceType(v)
	}
	if v, ok := opts["victim_name"].(string); ok {
		kill.Victim.Name = v
	}
	if v, ok := opts["stunned"].(bool); ok {
		kill.VictimStunned = v
	}
	if v, ok := opts["killer"].(string); ok {
		kill.KillerType = chess.PieceType(v)
	}
	if v, ok := opts["killer_name"].(string); ok {
		kill.KillerName = v
	}
	if v, ok := opts["terrain"].(string); ok {
		kill.KillerTerrain = chess.Terrain(v)
	}
	if v, ok := opts["king_defeat"].(string); ok {
		kill.KingDefeat = chess.KingDefeatKind(v)
	}
	scenario.Events = append(scenario.Events, objective.Event{
		Type: objective.EventPieceKilled,
		Kill: &kill,
	})
	return 0
}

func scenarioConvert(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.Events = append(scenario.Events, objective.Event{Type: objective.EventConversion})
	return 0
}

func scenarioCourtierDestroyed(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.Events = append(scenario.Events, objective.Event{Type: objective.EventCourtierDestroyed})
	return 0
}

func scenarioItem(state *lua.State) int {
	scenario := checkScenario(state)
	item := lua.CheckString(state, 2)
	scenario.Events = append(scenario.Events, objective.Event{
		Type: objective.EventItemUsed,
		Item: chess.ItemKind(item),
	})
	return 0
}

func scenarioKingAt(state *lua.State) int {
	scenario := checkScenario(state)
	file := lua.CheckInteger(state, 2)
	rank := lua.CheckInteger(state, 3)
	scenario.Events = append(scenario.Events, objective.Event{
		Type:   objective.EventKingMoved,
		Square: &chess.Square{File: file, Rank: rank},
	})
	return 0
}

func scenarioDisguise(state *lua.State) int {
	scenario := checkScenario(state)
	active := state.ToBoolean(2)
	scenario.Events = append(scenario.Events, objective.Event{
		Type:   objective.EventKingDisguise,
		Active: active,
	})
	return 0
}

func scenarioWinningBlow(state *lua.State) int {
	scenario := checkScenario(state)
	delivered := lua.CheckString(state, 2)
	original := lua.OptString(state, 3, delivered)
	scenario.Events = append(scenario.Events, objective.Event{
		Type:      objective.EventWinningBlow,
		Delivered: chess.PieceType(delivered),
		Original:  chess.PieceType(original),
	})
	return 0
}

func scenarioExpectCompleted(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.ExpectCompleted = checkStringList(state, 2)
	return 0
}

func scenarioExpectFailed(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.ExpectFailed = checkStringList(state, 2)
	return 0
}

func scenarioExpectBonus(state *lua.State) int {
	scenario := checkScenario(state)
	bonus := lua.CheckInteger(state, 2)
	scenario.ExpectBonus = &bonus
	return 0
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func checkStringList(state *lua.State, index int) []string {
	lua.CheckType(state, index, lua.TypeTable)
	value := tableToGo(state, index)
	items, ok := value.([]any)
	if !ok {
		// An empty Lua table converts to a map; treat it as an empty list.
		if m, isMap := value.(map[string]any); isMap && len(m) == 0 {
			return nil
		}
		lua.Errorf(state, "expected a list of objective ids")
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		text, ok := item.(string)
		if !ok {
			lua.Errorf(state, "objective ids must be strings")
			return nil
		}
		out = append(out, text)
	}
	return out
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	default:
		return nil
	}
}

func tableToGo(state *lua.State, index int) any {
	if state.TypeOf(index) != lua.TypeTable {
		return nil
	}

	index = state.AbsIndex(index)
	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if state.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, luaToGo(state, -1))
			state.Pop(1)
		}
		return result
	}

	return tableToMap(state, index)
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int(value)
	}
	return value
}
