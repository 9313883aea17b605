// Command lsm303-stream samples an LSM303DLHC at a fixed interval and
// streams the readings as JSON, either to stdout or to an MQTT topic.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/sunsided/lsm303dlhc"
)

// sample is the JSON schema we emit: acceleration in g, magnetic field in
// Gauss, temperature in uncalibrated °C, time in RFC3339.
type sample struct {
	Ax   float64 `json:"ax"`
	Ay   float64 `json:"ay"`
	Az   float64 `json:"az"`
	Mx   float64 `json:"mx"`
	My   float64 `json:"my"`
	Mz   float64 `json:"mz"`
	Temp float64 `json:"temp,omitempty"`
	Time string  `json:"time"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: lsm303-stream <config.yaml>")
	}

	cfg, err := Load(os.Args[1])
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// Validated by Load.
	accelRate, _ := cfg.Accel.rate()
	accelScale, _ := cfg.Accel.scale()
	magRate, _ := cfg.Mag.rate()
	magGain, _ := cfg.Mag.gain()

	sensor, err := lsm303dlhc.New(cfg.Bus,
		lsm303dlhc.AccelDataRate(accelRate),
		lsm303dlhc.AccelScale(accelScale),
		lsm303dlhc.HighResolution(cfg.Accel.HighResolution),
		lsm303dlhc.LowPower(cfg.Accel.LowPower),
		lsm303dlhc.BlockDataUpdate(true),
		lsm303dlhc.MagDataRate(magRate),
		lsm303dlhc.MagGain(magGain),
		lsm303dlhc.TemperatureSensor(cfg.Temp),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer sensor.Close()

	hz, err := sensor.SampleRate()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("LSM303DLHC detected, accelerometer at %g Hz", hz)

	publish := func(b []byte) error {
		fmt.Println(string(b))
		return nil
	}
	if cfg.MQTT.Broker != "" {
		opts := mqtt.NewClientOptions().
			AddBroker(cfg.MQTT.Broker).
			SetClientID(cfg.MQTT.ClientID)
		client := mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			log.Fatalf("mqtt connect failed: %v", token.Error())
		}
		defer client.Disconnect(250)

		publish = func(b []byte) error {
			token := client.Publish(cfg.MQTT.Topic, 0, false, b)
			token.Wait()
			return token.Error()
		}
		log.Printf("publishing to %s on %s", cfg.MQTT.Topic, cfg.MQTT.Broker)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(cfg.IntervalMs) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		s := sample{Time: time.Now().UTC().Format(time.RFC3339)}
		s.Ax, s.Ay, s.Az, err = sensor.AccelerationNorm()
		if err != nil {
			log.Printf("accel read failed: %v", err)
			continue
		}
		s.Mx, s.My, s.Mz, err = sensor.MagneticFieldNorm()
		if err != nil {
			log.Printf("mag read failed: %v", err)
			continue
		}
		if cfg.Temp {
			s.Temp, err = sensor.Temperature()
			if err != nil {
				log.Printf("temperature read failed: %v", err)
				continue
			}
		}

		b, err := json.Marshal(s)
		if err != nil {
			log.Printf("marshal failed: %v", err)
			continue
		}
		if err := publish(b); err != nil {
			log.Printf("publish failed: %v", err)
		}
	}
}
