package api

// RiftDifficulty grades a rift's challenge
type RiftDifficulty string

const (
	DifficultyEasy     RiftDifficulty = "EASY"
	DifficultyMedium   RiftDifficulty = "MEDIUM"
	DifficultyHard     RiftDifficulty = "HARD"
	DifficultyVeryHard RiftDifficulty = "VERY_HARD"
	DifficultyExtreme  RiftDifficulty = "EXTREME"
)

// Rarity grades item drops
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// Item is a game item definition
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Slot        string `json:"slot"`
	Rarity      Rarity `json:"rarity"`
	IconURL     string `json:"iconUrl"`
	HPBonus     int    `json:"hpBonus"`
	StrBonus    int    `json:"strBonus"`
	AgiBonus    int    `json:"agiBonus"`
	IntBonus    int    `json:"intBonus"`
	VitBonus    int    `json:"vitBonus"`
}

// InventoryItem is an owned stack of an item
type InventoryItem struct {
	ID         string `json:"id"`
	Quantity   int    `json:"quantity"`
	IsEquipped bool   `json:"isEquipped"`
	Item       Item   `json:"item"`
}

// RiftReward is one entry of a rift's drop table
type RiftReward struct {
	Quantity int  `json:"quantity"`
	Item     Item `json:"item"`
}

// Rift is an explorable battle site
type Rift struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Difficulty RiftDifficulty `json:"difficulty"`
	Status     string         `json:"status"`
	Rewards    []RiftReward   `json:"rewards"`
}

// BattleSession is the handle returned by battle creation; its ID keys
// the websocket join handshake
type BattleSession struct {
	ID string `json:"id"`
}

// StatAllocation is the payload for spending stat points
type StatAllocation struct {
	Str int `json:"str"`
	Agi int `json:"agi"`
	Int int `json:"int"`
	Vit int `json:"vit"`
}
