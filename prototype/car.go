package prototype

// Car is a plain value holder used as a prototype.
type Car struct {
	Year  int
	Color string
}

// NewCar returns a Car with the given year and color.
func NewCar(year int, color string) *Car {
	return &Car{Year: year, Color: color}
}

// Clone returns a new Car with the same field values.
func (c *Car) Clone() *Car {
	return &Car{Year: c.Year, Color: c.Color}
}

// CarFactory manufactures cars by cloning a single prototype.
type CarFactory struct {
	prototype *Car
}

// NewCarFactory returns a factory backed by prototype.
// The factory never mutates the prototype.
func NewCarFactory(prototype *Car) *CarFactory {
	return &CarFactory{prototype: prototype}
}

// CreateCar returns a fresh clone of the prototype.
func (f *CarFactory) CreateCar() *Car {
	return f.prototype.Clone()
}
