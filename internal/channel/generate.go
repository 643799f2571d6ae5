//go:generate mockgen -source=consumer.go -destination=./mock_consumer.go -package=channel -self_package=github.com/Gunvolt24/resto_admin/internal/channel

package channel
