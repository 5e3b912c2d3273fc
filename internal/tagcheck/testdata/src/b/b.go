package b

type Config struct {
	Name string `yaml:"name"`

	Port int `json:"port"` // want `field Port has no yaml tag`

	nested struct {
		Depth int // want `field Depth has no yaml tag`
	}
}
