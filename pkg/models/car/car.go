package car

// Suspension represents the wheel setup of a car
type Suspension struct {
	WheelRadius  float64 `json:"wheel_radius" yaml:"wheel_radius"`
	Stiffness    float64 `json:"stiffness" yaml:"stiffness"`
	RestLength   float64 `json:"rest_length" yaml:"rest_length"`
	FrictionSlip float64 `json:"friction_slip" yaml:"friction_slip"` // grip before the tire slides
	RearFriction float64 `json:"rear_friction" yaml:"rear_friction"` // multiplier on rear grip, < 1 drifts
	TrackWidth   float64 `json:"track_width" yaml:"track_width"`     // distance between left and right wheels
	WheelBase    float64 `json:"wheel_base" yaml:"wheel_base"`       // distance between front and rear axles
}

// Car represents a drivable car preset
type Car struct {
	Name              string     `json:"name" yaml:"name"`
	Make              string     `json:"make" yaml:"make"`
	Model             string     `json:"model" yaml:"model"`
	Mass              float64    `json:"mass" yaml:"mass"` // in kg
	Width             float64    `json:"width" yaml:"width"`
	Height            float64    `json:"height" yaml:"height"`
	Length            float64    `json:"length" yaml:"length"`
	Drag              float64    `json:"drag" yaml:"drag"`
	RollingResistance float64    `json:"rolling_resistance" yaml:"rolling_resistance"`
	Suspension        Suspension `json:"suspension" yaml:"suspension"`
}

// NewCar creates a car with the default chassis and suspension
func NewCar(name, make, model string, mass float64) *Car {
	return &Car{
		Name:              name,
		Make:              make,
		Model:             model,
		Mass:              mass,
		Width:             0.15,
		Height:            0.07,
		Length:            0.3,
		Drag:              12,
		RollingResistance: 6,
		Suspension: Suspension{
			WheelRadius:  0.05,
			Stiffness:    30,
			RestLength:   0.03,
			FrictionSlip: 1.5,
			RearFriction: 1,
			TrackWidth:   0.13,
			WheelBase:    0.2,
		},
	}
}

// RideHeight is the height of the chassis centre when the car sits at rest
func (c *Car) RideHeight() float64 {
	return c.Suspension.WheelRadius + c.Suspension.RestLength
}
