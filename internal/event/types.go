// internal/event/types.go
package event

const (
	UnitDispensed EventType = "UnitDispensed" // юнит вышел на поле
	UnitStalled   EventType = "UnitStalled"   // путь к выходу перекрыт
	UnitLeaked    EventType = "UnitLeaked"    // юнит дошёл до выхода
	WaveStarted   EventType = "WaveStarted"
	TowerPlaced   EventType = "TowerPlaced"
	TowerUpgraded EventType = "TowerUpgraded"
	TowerSold     EventType = "TowerSold"
	GameOver      EventType = "GameOver"
)
