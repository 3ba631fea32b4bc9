package components

import "github.com/yohamta/donburi"

type BulletData struct {
	Owner donburi.Entity
}

var Bullet = donburi.NewComponentType[BulletData]()
