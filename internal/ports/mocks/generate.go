//go:generate mockgen -source=../orders_api.go -destination=./mock_orders_api.go -package=mocks
//go:generate mockgen -source=../validator.go  -destination=./mock_validator.go  -package=mocks
//go:generate mockgen -source=../alert.go      -destination=./mock_alert.go      -package=mocks

package mocks
