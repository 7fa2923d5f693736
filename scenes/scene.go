package scenes

// SceneChanger switches the active scene of the game
type SceneChanger interface {
	ChangeScene(scene interface{})
}
