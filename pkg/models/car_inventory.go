package models

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/driftrace/pkg/models/car"
)

var ErrCarNotFound = errors.New("models: car not found")

// CarInventory holds the selectable car presets
var CarInventory = &carInventory{
	cars: []*car.Car{
		driftCar(),
		gripCar(),
		heavyCar(),
	},
}

type carInventory struct {
	cars []*car.Car
}

// GetAllCars returns all available cars
func (ci *carInventory) GetAllCars() []*car.Car {
	return ci.cars
}

// Find returns a copy of the named preset
func (ci *carInventory) Find(name string) (*car.Car, error) {
	for _, c := range ci.cars {
		if c.Name == name {
			found := *c
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrCarNotFound, name)
}

// driftCar loses the rear end easily
func driftCar() *car.Car {
	c := car.NewCar("drift", "Toyota", "AE86", 300)
	c.Suspension.RearFriction = 0.7
	return c
}

func gripCar() *car.Car {
	c := car.NewCar("grip", "Honda", "S2000", 300)
	c.Suspension.FrictionSlip = 2.5
	return c
}

func heavyCar() *car.Car {
	c := car.NewCar("heavy", "Ford", "Mustang", 420)
	c.Length = 0.34
	c.Suspension.WheelBase = 0.24
	c.Drag = 9
	return c
}
