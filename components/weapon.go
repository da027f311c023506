package components

import "github.com/yohamta/donburi"

type WeaponData struct {
	CooldownLeft float64 // seconds until the next shot is allowed
}

var Weapon = donburi.NewComponentType[WeaponData]()
